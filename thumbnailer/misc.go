package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/sunshineplan/imgbound"
	"github.com/sunshineplan/utils/log"
)

var supported = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|tiff?|bmp|webp|pdf)$`)

func loadImages(root string) (imgs []string) {
	var message string
	var width int
	done := make(chan struct{})
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m := message
				fmt.Fprintf(os.Stdout, "\r%s\r%s", strings.Repeat(" ", width), m)
				width = runewidth.StringWidth(m)
			}
		}
	}()
	var dir string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && supported.MatchString(d.Name()) {
			imgs = append(imgs, path)
		}
		if d.IsDir() {
			dir = path
		}
		message = fmt.Sprintf("Found images: %d, Scanning directory %s", len(imgs), dir)
		return nil
	})
	close(done)
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", width))
	return
}

var errSkip = errors.New("skip")

// thumbnail loads image reduced to the configured box and hands it to the saver.
// done is posted to q exactly once, whether the image was saved, skipped or failed.
func thumbnail(image, output string, saver *imgbound.Saver, q *imgbound.Queue, done func(error)) {
	if _, err := os.Stat(output); err == nil {
		if !*force {
			q.Post(func() { done(errSkip) })
			return
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Error("Failed to get FileInfo", "name", output, "error", err)
		q.Post(func() { done(err) })
		return
	}
	path := filepath.Dir(output)
	if err := os.MkdirAll(path, 0755); err != nil {
		log.Error("Failed to create directory", "path", path, "error", err)
		q.Post(func() { done(err) })
		return
	}
	img, err := imgbound.Load(image, *width, *height, imgbound.AutoOrientation(*autoOrientation), imgbound.Filter(resample))
	if err != nil {
		q.Post(func() { done(err) })
		return
	}
	saver.SaveImageAsync(img, output, &task, q, done)
}
