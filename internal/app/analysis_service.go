package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"foodsnap/internal/upload"
	"foodsnap/internal/vision"
)

// The messages double as the text shown to clients.
var (
	ErrMissingUpload     = errors.New("no image sent")
	ErrEmptyFilename     = errors.New("must select an image file")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecodeFailure     = errors.New("could not process the provided image")
)

// Recorder receives analysis outcomes, e.g. for metrics.
type Recorder interface {
	ObserveAnalysis(category string)
	ObserveRejection(reason string)
}

type AnalysisService struct {
	jpegQuality int
	maxPixels   int64
	recorder    Recorder
}

type AnalysisInput struct {
	Filename string
	Data     []byte
}

// AnalysisOutput is the response body of a successful analysis.
type AnalysisOutput struct {
	vision.Result
	Image string `json:"image"`
}

func NewAnalysisService(jpegQuality int, maxPixels int64, recorder Recorder) *AnalysisService {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = 80
	}
	if maxPixels <= 0 {
		maxPixels = vision.DefaultMaxPixels
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &AnalysisService{
		jpegQuality: jpegQuality,
		maxPixels:   maxPixels,
		recorder:    recorder,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, input AnalysisInput) (*AnalysisOutput, error) {
	logger := zerolog.Ctx(ctx)

	filename := upload.SanitizeFilename(input.Filename)
	if filename == "" {
		s.Reject(ErrEmptyFilename)
		return nil, ErrEmptyFilename
	}
	if !upload.AllowedExtension(filename) {
		s.Reject(ErrUnsupportedFormat)
		return nil, ErrUnsupportedFormat
	}

	img, err := decode(input.Data, s.maxPixels)
	if err != nil {
		logger.Debug().Err(err).Str("filename", filename).Int("bytes", len(input.Data)).Msg("image rejected")
		s.Reject(ErrDecodeFailure)
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	result := vision.Analyze(img)

	dataURI, err := vision.EncodeDataURI(img, s.jpegQuality)
	if err != nil {
		logger.Warn().Err(err).Str("filename", filename).Msg("re-encode failed")
		s.Reject(ErrDecodeFailure)
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	s.recorder.ObserveAnalysis(result.Category)
	logger.Info().
		Str("filename", filename).
		Str("category", result.Category).
		Int("confidence", result.Confidence).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("image analyzed")

	return &AnalysisOutput{Result: result, Image: dataURI}, nil
}

// Reject records a failed request under the reason derived from err.
func (s *AnalysisService) Reject(err error) {
	s.recorder.ObserveRejection(RejectionReason(err))
}

// RejectionReason maps a service error to a short metrics label.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingUpload):
		return "missing_upload"
	case errors.Is(err, ErrEmptyFilename):
		return "empty_filename"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrDecodeFailure):
		return "decode_failure"
	default:
		return "other"
	}
}

// decode turns panics from image decoders into errors.
func decode(data []byte, maxPixels int64) (img *image.NRGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return vision.Decode(data, maxPixels)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAnalysis(string) {}
func (nopRecorder) ObserveRejection(string) {}
