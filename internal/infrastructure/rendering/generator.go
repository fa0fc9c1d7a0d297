package rendering

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"regexp"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/infrastructure/metrics"
	"reborn_api/internal/usecase/interfaces"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

const (
	fileNamePrefix  = "certidao_nascimento_"
	pngContentType  = "image/png"
	backgroundImage = "image"
	backgroundSynth = "synthesized"
)

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CertificateGenerator rasterizes birth certificates with gg.
//
// Only the base image load is allowed to fail silently. Font and encoding errors are returned.
type CertificateGenerator struct {
	fonts  FontResolver
	images ImageLoader
	loc    *time.Location
	log    *zap.Logger

	now    func() time.Time
	encode func(w io.Writer, img image.Image) error
}

var _ interfaces.ICertificateGenerator = (*CertificateGenerator)(nil)

func NewCertificateGenerator(fonts FontResolver, images ImageLoader, loc *time.Location, log *zap.Logger) *CertificateGenerator {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CertificateGenerator{
		fonts:  fonts,
		images: images,
		loc:    loc,
		log:    log,
		now:    time.Now,
		encode: png.Encode,
	}
}

func (g *CertificateGenerator) Generate(
	ctx context.Context,
	tpl entities.DocumentTemplate,
	reborn entities.Reborn,
	custom entities.CertificateFields,
	format entities.DocumentFormat,
) (entities.GeneratedFile, error) {
	if format != entities.DocumentFormatPNG {
		return entities.GeneratedFile{}, entities.ErrUnsupportedFormat
	}
	if tpl.Width <= 0 || tpl.Height <= 0 {
		return entities.GeneratedFile{}, entities.ErrInvalidTemplateDimensions
	}

	start := time.Now()
	now := g.now()
	dc := gg.NewContext(tpl.Width, tpl.Height)

	background, err := g.drawBackground(ctx, dc, tpl)
	if err != nil {
		return entities.GeneratedFile{}, err
	}

	fields := ResolveFields(reborn, custom, now, g.loc)
	for _, p := range tpl.Placeholders {
		if err := g.drawPlaceholder(dc, p, FieldValue(fields, p.Key)); err != nil {
			return entities.GeneratedFile{}, err
		}
	}

	var buf bytes.Buffer
	if err := g.encode(&buf, dc.Image()); err != nil {
		return entities.GeneratedFile{}, err
	}
	metrics.CertificateRenderDuration.WithLabelValues(background).Observe(time.Since(start).Seconds())

	return entities.GeneratedFile{
		Buffer:      buf.Bytes(),
		FileName:    FileName(reborn.Name, now),
		ContentType: pngContentType,
	}, nil
}

// FileName builds certidao_nascimento_<name>_<unix ms>.png, every non alphanumeric rune of the
// name replaced by "_".
func FileName(rebornName string, now time.Time) string {
	safe := unsafeFileNameChars.ReplaceAllString(rebornName, "_")
	return fmt.Sprintf("%s%s_%d.png", fileNamePrefix, safe, now.UnixMilli())
}

func (g *CertificateGenerator) drawBackground(ctx context.Context, dc *gg.Context, tpl entities.DocumentTemplate) (string, error) {
	if g.images != nil {
		img, err := g.images.Load(ctx, tpl.BaseImageURL)
		if err == nil {
			dc.DrawImage(fitCanvas(img, tpl.Width, tpl.Height), 0, 0)
			return backgroundImage, nil
		}
		g.log.Debug("base image unavailable, using synthesized background",
			zap.String("template_id", tpl.ID),
			zap.String("base_image_url", tpl.BaseImageURL),
			zap.Error(err),
		)
	}
	return backgroundSynth, g.drawSynthesizedBackground(dc, tpl)
}

func (g *CertificateGenerator) drawSynthesizedBackground(dc *gg.Context, tpl entities.DocumentTemplate) error {
	style := StyleFor(tpl.ResolvedPalette())
	w, h := float64(tpl.Width), float64(tpl.Height)

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, colorOrBlack(style.GradientFrom))
	grad.AddColorStop(1, colorOrBlack(style.GradientTo))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(colorOrBlack(style.Border))
	dc.SetLineWidth(borderLineWidth)
	dc.DrawRectangle(borderInset, borderInset, w-2*borderInset, h-2*borderInset)
	dc.Stroke()

	titleFace, err := g.fonts.Face(titleFontFamily, titleFontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(titleFace)
	dc.SetColor(colorOrBlack(style.Title))
	dc.DrawStringAnchored(TitleText, w/2, titleBaselineY, anchorX(entities.TextAlignCenter), 0)

	subtitleFace, err := g.fonts.Face(subtitleFamily, subtitleFontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(subtitleFace)
	dc.SetColor(colorOrBlack(subtitleColor))
	dc.DrawStringAnchored(SubtitleText, w/2, subtitleBaseline, anchorX(entities.TextAlignCenter), 0)
	return nil
}

func (g *CertificateGenerator) drawPlaceholder(dc *gg.Context, p entities.TextPlaceholder, text string) error {
	size := p.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	face, err := g.fonts.Face(p.FontFamily, size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(colorOrBlack(p.Color))
	ax := anchorX(p.Align())

	if p.MaxWidth > 0 {
		if width, _ := dc.MeasureString(text); width > p.MaxWidth {
			measure := func(s string) float64 {
				w, _ := dc.MeasureString(s)
				return w
			}
			y := p.Y
			for _, line := range WrapText(text, p.MaxWidth, measure) {
				dc.DrawStringAnchored(line, p.X, y, ax, 0)
				y += lineAdvance(size)
			}
			return nil
		}
	}

	dc.DrawStringAnchored(text, p.X, p.Y, ax, 0)
	return nil
}

func anchorX(align entities.TextAlign) float64 {
	switch align {
	case entities.TextAlignCenter:
		return 0.5
	case entities.TextAlignRight:
		return 1
	default:
		return 0
	}
}
