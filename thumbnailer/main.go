package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sunshineplan/imgbound"
	"github.com/sunshineplan/progressbar"
	"github.com/sunshineplan/utils/log"
	"github.com/sunshineplan/workers"
	"github.com/vharitonsky/iniflags"
)

var (
	src             = flag.String("src", "", "")
	dst             = flag.String("dst", "output", "")
	force           = flag.Bool("force", false, "")
	format          = imgbound.JPEG
	quality         = flag.Int("quality", 75, "")
	width           = flag.Int("width", 800, "")
	height          = flag.Int("height", 600, "")
	autoOrientation = flag.Bool("auto-orientation", true, "")
	filter          = flag.String("filter", "box", "")
	worker          = flag.Int("worker", 5, "")
	debug           = flag.Bool("debug", false, "")
)

var (
	task     imgbound.FormatOption
	resample imaging.ResampleFilter
)

var filters = map[string]imaging.ResampleFilter{
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"lanczos":    imaging.Lanczos,
}

func init() {
	flag.TextVar(&format, "format", imgbound.JPEG, "")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --src
		source file or directory
  --dst
		destination directory (default: output)
  --force
		force overwrite (default: false)
  --format
		output format (jpg, jpeg, png, gif, tif, tiff and bmp are supported, default: jpg)
  --quality
		set jpeg quality (range 1-100, default: 75)
  --width
		minimum width of the upright thumbnail (default: 800)
  --height
		minimum height of the upright thumbnail (default: 600)
  --auto-orientation
		rotate images according to their EXIF orientation tag (default: true)
  --filter
		resampling filter for reductions the decoder cannot apply
		(box, linear, catmullrom and lanczos are supported, default: box)
  --worker
		number of images processed at the same time (default: 5)
  --debug
		log every converted image (default: false)`)
}

func main() {
	self, err := os.Executable()
	if err != nil {
		log.Error("Failed to get self path", "error", err)
		os.Exit(1)
	}

	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	if *width <= 0 || *height <= 0 {
		log.Error("Width and height must be positive", "width", *width, "height", *height)
		os.Exit(1)
	}
	var ok bool
	if resample, ok = filters[strings.ToLower(*filter)]; !ok {
		log.Error("Unknown filter", "filter", *filter)
		os.Exit(1)
	}
	if *worker < 1 {
		*worker = 1
	}
	task = imgbound.FormatOption{Format: format, EncodeOption: []imgbound.EncodeOption{imgbound.Quality(*quality)}}

	srcInfo, err := os.Stat(*src)
	if err != nil {
		log.Error("Failed to get source", "src", *src, "error", err)
		os.Exit(1)
	}
	if dstInfo, err := os.Stat(*dst); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error("Failed to get destination", "dst", *dst, "error", err)
			os.Exit(1)
		}
		if err := os.MkdirAll(*dst, 0755); err != nil {
			log.Error("Failed to create destination", "dst", *dst, "error", err)
			os.Exit(1)
		}
	} else if !dstInfo.IsDir() {
		log.Error("Destination is not a directory", "dst", *dst)
		os.Exit(1)
	}

	var root string
	var images []string
	switch mode := srcInfo.Mode(); {
	case mode.IsDir():
		root = *src
		images = loadImages(*src)
	case mode.IsRegular():
		root = filepath.Dir(*src)
		images = []string{*src}
	default:
		log.Error("Unknown source", "src", *src)
		os.Exit(1)
	}
	total := len(images)
	log.Info("Total images", "count", total)

	if failed := run(root, images); failed > 0 {
		log.Error("Done with errors", "failed", failed, "total", total)
		os.Exit(1)
	}
	log.Info("Done")
}

// run converts images on a pool of workers and handles every completion on
// the calling goroutine. A worker keeps its slot until the completion of its
// image has been handled, so at most *worker images are in memory at once.
// It returns the number of failed images.
func run(root string, images []string) (failed int) {
	start := time.Now()
	saver := imgbound.NewSaver(*worker)
	queue := imgbound.NewQueue(*worker)

	pb := progressbar.New(len(images))
	pb.Start()
	go workers.New(*worker).Slice(images, func(_ int, i interface{}) {
		image := i.(string)
		finished := make(chan struct{})
		done := func(output string) func(error) {
			return func(err error) {
				defer close(finished)
				defer pb.Add(1)
				report(image, output, err, &failed)
			}
		}

		rel, err := filepath.Rel(root, image)
		if err != nil {
			queue.Post(func() { done("")(err) })
		} else {
			output := task.Ext(filepath.Join(*dst, rel))
			thumbnail(image, output, saver, queue, done(output))
		}
		<-finished
	})

	for range images {
		queue.Poll(context.Background())
	}
	saver.Wait()
	pb.Done()
	log.Info("Job done", "elapsed", time.Since(start))

	return
}

func report(image, output string, err error, failed *int) {
	switch {
	case err == nil:
		if *debug {
			log.Info("Converted", "image", image, "output", output)
		}
	case errors.Is(err, errSkip):
		log.Info("Skip", "output", output)
	default:
		log.Error("Failed to convert image", "image", image, "error", err)
		*failed++
	}
}
