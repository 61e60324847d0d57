// Package imageprocessor decodes images and computes their perceptual
// fingerprints.
package imageprocessor

import (
	"fmt"
	"image"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"

	// Register the WebP decoder; imaging handles the other supported formats.
	_ "golang.org/x/image/webp"

	"imagecleaner/types"
)

// LoadImage opens and decodes an image file. Decode failures (corrupt data,
// unsupported codec) are returned to the caller and must never abort a run.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return img, nil
}

// NormalizeImage converts an image to the NRGBA color model so that paletted
// or single-channel sources measure the same as their RGB equivalents.
func NormalizeImage(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ComputeFingerprint produces the 64-bit average-hash fingerprint of an
// image: brightness over an 8x8 downsampled grid, one bit per cell set when
// the cell is above the mean.
func ComputeFingerprint(img image.Image) (*goimagehash.ImageHash, error) {
	hash, err := goimagehash.AverageHash(NormalizeImage(img))
	if err != nil {
		return nil, fmt.Errorf("failed to compute fingerprint: %w", err)
	}
	return hash, nil
}

// HashImageFile stats, decodes and fingerprints one file, returning a
// complete ImageRecord.
func HashImageFile(path string) (types.ImageRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.ImageRecord{}, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	img, err := LoadImage(path)
	if err != nil {
		return types.ImageRecord{}, err
	}

	hash, err := ComputeFingerprint(img)
	if err != nil {
		return types.ImageRecord{}, fmt.Errorf("cannot hash %s: %w", path, err)
	}

	return types.ImageRecord{
		Path:        path,
		Size:        info.Size(),
		Fingerprint: hash,
	}, nil
}
