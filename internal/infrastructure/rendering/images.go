package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
)

var ErrNoBaseImage = errors.New("template has no base image")

// ImageLoader fetches a template base image.
type ImageLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// BaseImageLoader loads http(s) references through resty and everything else from disk.
type BaseImageLoader struct {
	client *resty.Client
}

func NewBaseImageLoader(timeout time.Duration) *BaseImageLoader {
	return &BaseImageLoader{
		client: resty.New().SetTimeout(timeout),
	}
}

func (l *BaseImageLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrNoBaseImage
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		resp, err := l.client.R().SetContext(ctx).Get(ref)
		if err != nil {
			return nil, fmt.Errorf("fetch base image: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch base image: unexpected status %s", resp.Status())
		}
		return imaging.Decode(bytes.NewReader(resp.Body()))
	}

	return imaging.Open(strings.TrimPrefix(ref, "file://"))
}

// fitCanvas stretches img to exactly width x height.
func fitCanvas(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
