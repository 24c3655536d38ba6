package runner

import (
	"encoding/json"
	"image"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/strike-clean/internal/config"
	"github.com/ironsheep/strike-clean/internal/detection"
	"github.com/ironsheep/strike-clean/internal/imaging"
)

const (
	successMessage   = "Strikethroughs removed successfully"
	processFailedMsg = "Failed to process image"
	noInputMsg       = "No base64 data provided via stdin"
	readFailedMsg    = "Failed to read input or process data"
	logLevelEnv      = "STRIKE_CLEAN_LOG_LEVEL"
)

// Result is the JSON envelope written to stdout.
type Result struct {
	Success        bool   `json:"success"`
	ProcessedImage string `json:"processedImage,omitempty"`
	Error          string `json:"error,omitempty"`
	Message        string `json:"message"`
}

// Run reads the entire stdin stream as base64 image data, processes it, and
// writes the result envelope to stdout. The return value is the process exit
// code: 0 whenever an envelope was emitted through the normal path, 1 when no
// input was received or the envelope could not be written.
func Run(stdin io.Reader, stdout io.Writer, params config.Params) int {
	data, err := io.ReadAll(stdin)
	if err != nil {
		emit(stdout, Result{Success: false, Error: err.Error(), Message: readFailedMsg})
		return 1
	}

	input := strings.TrimSpace(string(data))
	if input == "" {
		emit(stdout, Result{Success: false, Error: "No input data received", Message: noInputMsg})
		return 1
	}

	result := Process(input, params)
	if err := emit(stdout, result); err != nil {
		log.Printf("Failed to emit result: %v", err)
		return 1
	}
	return 0
}

// Process runs the full decode -> remove -> encode pipeline on one base64
// payload. All errors are folded into a failure envelope; Process itself
// never panics on bad input.
func Process(input string, params config.Params) Result {
	img, format, err := imaging.DecodeBase64Image(input)
	if err != nil {
		return Result{Success: false, Error: err.Error(), Message: processFailedMsg}
	}

	cleaned, report := detection.Remove(img, params)

	if debugEnabled() {
		logReport(img, format, report)
	}

	encoded, err := imaging.EncodePNGToBase64(cleaned)
	if err != nil {
		return Result{Success: false, Error: err.Error(), Message: processFailedMsg}
	}

	return Result{Success: true, ProcessedImage: encoded, Message: successMessage}
}

func emit(w io.Writer, r Result) error {
	return json.NewEncoder(w).Encode(r)
}

func debugEnabled() bool {
	return os.Getenv(logLevelEnv) == "debug"
}

// logReport writes per-candidate detail to stderr for tuning sessions.
func logReport(img *image.NRGBA, format string, report detection.Report) {
	log.Printf("decoded %s image %dx%d: %d candidates, %d strikethroughs, %d pixels masked",
		format, img.Bounds().Dx(), img.Bounds().Dy(),
		report.Candidates, report.Strikethroughs, report.MaskedPixels)

	for i, d := range report.Decisions {
		switch {
		case d.Skipped != "":
			log.Printf("  candidate %d %v: skipped (%s)", i, d.Bounds, d.Skipped)
		case d.Strikethrough:
			log.Printf("  candidate %d %v: strikethrough (relative position %.2f)", i, d.Bounds, d.RelativePosition)
		default:
			log.Printf("  candidate %d %v: underline (relative position %.2f)", i, d.Bounds, d.RelativePosition)
		}
	}

	if report.Mask != nil {
		stats := imaging.StrokeColor(img, report.Mask)
		log.Printf("  dominant stroke color %s across %d pixels (%d clusters)", stats.Hex, stats.Pixels, stats.Clusters)
	}
}
