package service

import (
	"github.com/suzubu/Infinite-Image-Slider/internal/scan"
)

// FileScanner abstracts file scanning.
type FileScanner interface {
	Run(dir string, logger scan.LoggerFunc) <-chan scan.FileItem
}

// ScannerService turns a directory of images into slide candidates.
type ScannerService struct {
	FileScan FileScanner
	Images   *ImageService
}

// NewScannerService constructs a new ScannerService.
func NewScannerService(fileScan FileScanner, images *ImageService) *ScannerService {
	return &ScannerService{
		FileScan: fileScan,
		Images:   images,
	}
}

// DirSlide is an image found on disk with the title derived from its
// metadata.
type DirSlide struct {
	Path  string
	Title string
}

// ScanDir walks dir and describes every image found, in lexical order.
// Images whose metadata cannot be read keep their file name as title.
func (s *ScannerService) ScanDir(dir string, logger scan.LoggerFunc) []DirSlide {
	var slides []DirSlide
	for item := range s.FileScan.Run(dir, logger) {
		slide := DirSlide{Path: item.Path, Title: item.Name}
		if info, err := s.Images.GetImageInfo(item.Path); err == nil {
			slide.Title = info.Title
		} else if logger != nil {
			logger("metadata: " + err.Error())
		}
		slides = append(slides, slide)
	}
	return slides
}
