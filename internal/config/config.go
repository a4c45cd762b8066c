package config

import "fmt"

type Config struct {
	PDF         PDFConfig         `yaml:"pdf"`
	OCR         OCRConfig         `yaml:"ocr"`
	Aggregate   AggregateConfig   `yaml:"aggregate"`
	Archive     ArchiveConfig     `yaml:"archive"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Transcribe  TranscribeConfig  `yaml:"transcribe"`
	Concat      ConcatConfig      `yaml:"concat"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// PDFConfig describes the directory layout of the PDF pipeline.
type PDFConfig struct {
	SourceDir   string `yaml:"source_dir"`
	ImageDir    string `yaml:"image_dir"`
	TextDir     string `yaml:"text_dir"`
	CombinedDir string `yaml:"combined_dir"`
	Extension   string `yaml:"extension"`
	Pdftoppm    string `yaml:"pdftoppm"`
	DPI         int    `yaml:"dpi"`
}

type OCRConfig struct {
	Languages []string `yaml:"languages"`
	// MaxWidth downscales wider page images before recognition. 0 keeps the original size.
	MaxWidth int `yaml:"max_width"`
}

type AggregateConfig struct {
	SkipFailed   bool `yaml:"skip_failed"`
	NaturalOrder bool `yaml:"natural_order"`
}

type ArchiveConfig struct {
	Tarball string `yaml:"tarball"`
	Final   string `yaml:"final"`
	Docx    string `yaml:"docx"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type TranscribeConfig struct {
	Root string `yaml:"root"`
	Temp string `yaml:"temp"`
}

// ConcatConfig lists the unit folders joined by concat-transcripts, in order.
type ConcatConfig struct {
	Root    string   `yaml:"root"`
	Folders []string `yaml:"folders"`
	Output  string   `yaml:"output"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Progress bool   `yaml:"progress"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// DefaultFolders returns the unit folder order of the workbook transcripts.
func DefaultFolders() []string {
	folders := []string{"Tech_Eng_2e_WB3_0intro"}
	for i := 1; i <= 12; i++ {
		folders = append(folders, fmt.Sprintf("Unit_%d", i))
	}
	return folders
}

// Default returns a validated configuration matching the fixed layout
// the tools use when no config file is present.
func Default() *Config {
	cfg := &Config{}
	// Validate only fails on negative numbers, never on the zero value.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.PDF.DPI < 0 {
		return fmt.Errorf("pdf.dpi must not be negative")
	}
	if c.OCR.MaxWidth < 0 {
		return fmt.Errorf("ocr.max_width must not be negative")
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.PDF.SourceDir == "" {
		c.PDF.SourceDir = "pdfs"
	}
	if c.PDF.ImageDir == "" {
		c.PDF.ImageDir = "processing/images"
	}
	if c.PDF.TextDir == "" {
		c.PDF.TextDir = "processing/texts"
	}
	if c.PDF.CombinedDir == "" {
		c.PDF.CombinedDir = "combinedtexts"
	}
	if c.PDF.Extension == "" {
		c.PDF.Extension = ".pdf"
	}
	if c.PDF.Pdftoppm == "" {
		c.PDF.Pdftoppm = "pdftoppm"
	}
	if len(c.OCR.Languages) == 0 {
		c.OCR.Languages = []string{"eng"}
	}
	if c.Archive.Tarball == "" {
		c.Archive.Tarball = "combinedtexts/combined_texts.tar.gz"
	}
	if c.Archive.Final == "" {
		c.Archive.Final = "combinedtexts/final_combined_text.txt"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Transcribe.Root == "" {
		c.Transcribe.Root = "."
	}
	if c.Concat.Root == "" {
		c.Concat.Root = "."
	}
	if len(c.Concat.Folders) == 0 {
		c.Concat.Folders = DefaultFolders()
	}
	if c.Concat.Output == "" {
		c.Concat.Output = "all_concatenated_transcripts.txt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
