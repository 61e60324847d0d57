package scanner

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, seed uint8) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x*8) + seed
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestCollectImageFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	wanted := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "B.PNG"),
		filepath.Join(dir, "e.gif"),
		filepath.Join(sub, "c.webp"),
	}
	ignored := []string{
		filepath.Join(dir, "notes.txt"),
		filepath.Join(sub, "d.tif"),
	}
	for _, path := range append(append([]string{}, wanted...), ignored...) {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	files, err := CollectImageFiles(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, wanted, files)
}

func TestCollectImageFiles_EmptyFolder(t *testing.T) {
	files, err := CollectImageFiles(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanFolder_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 0)
	writeTestPNG(t, filepath.Join(dir, "b.png"), 50)
	writeTestPNG(t, filepath.Join(dir, "c.png"), 100)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("garbage"), 0644))

	var out bytes.Buffer
	records, err := ScanFolder(&out, ScanOptions{FolderPath: dir})
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Contains(t, out.String(), "Found 4 image files to process...")
	assert.Contains(t, out.String(), "Error processing")
	assert.Contains(t, out.String(), "Successfully processed 3 images.")
}

func TestScanFolder_WalkOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 0)
	writeTestPNG(t, filepath.Join(dir, "b.png"), 50)

	var out bytes.Buffer
	records, err := ScanFolder(&out, ScanOptions{FolderPath: dir})
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, filepath.Join(dir, "a.png"), records[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.png"), records[1].Path)
}

func TestProgressTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 25)

	for i := 0; i < 25; i++ {
		tracker.Update(ProcessImageResult{Path: "img.png", Success: true})
	}

	assert.Equal(t, 25, tracker.Processed())
	assert.Equal(t, 0, tracker.Errors())
	assert.Contains(t, out.String(), "Processing 10/25...")
	assert.Contains(t, out.String(), "Processing 20/25...")
	assert.NotContains(t, out.String(), "Processing 25/25...")
}

func TestProgressTracker_CountsErrors(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 2)

	tracker.Update(ProcessImageResult{Path: "good.png", Success: true})
	tracker.Update(ProcessImageResult{Path: "bad.png", Success: false, Error: os.ErrPermission})

	assert.Equal(t, 2, tracker.Processed())
	assert.Equal(t, 1, tracker.Errors())
	assert.Contains(t, out.String(), "Error processing bad.png")
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("photo.jpeg"))
	assert.True(t, IsImageFile("photo.WEBP"))
	assert.False(t, IsImageFile("photo.raw"))
	assert.False(t, IsImageFile("photo"))
}
