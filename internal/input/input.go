package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"github.com/devknife/devknife/internal/core"
)

// Acquisition failures surfaced to the caller verbatim.
var (
	ErrNoArguments = errors.New("No arguments provided")
	ErrStdinTTY    = errors.New("No data available from stdin")
	ErrStdinEmpty  = errors.New("Empty input from stdin")
	ErrFileEmpty   = errors.New("File is empty")
)

// readChunkSize is the buffer size used when streaming large files.
const readChunkSize = 1 << 20

// Reader acquires command input from arguments, stdin, or a file and
// normalizes it into core.InputData.
type Reader struct {
	cfg        core.Config
	stdin      io.Reader
	isTerminal func() bool
}

func NewReader(cfg core.Config) *Reader {
	return &Reader{
		cfg:   cfg,
		stdin: os.Stdin,
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// FromArgs joins positional arguments with single spaces.
func (r *Reader) FromArgs(args []string) (core.InputData, error) {
	if len(args) == 0 {
		return core.InputData{}, ErrNoArguments
	}
	data := core.NewInputData(strings.Join(args, " "), core.SourceArgs)
	data.Metadata["arg_count"] = len(args)
	return data, nil
}

// FromStdin reads the whole of standard input. An interactive terminal
// counts as no input rather than blocking on the user.
func (r *Reader) FromStdin() (core.InputData, error) {
	if r.isTerminal() {
		return core.InputData{}, ErrStdinTTY
	}
	content, err := io.ReadAll(r.stdin)
	if err != nil {
		return core.InputData{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(content) == 0 {
		return core.InputData{}, ErrStdinEmpty
	}
	data, err := core.NewInputDataBytes(content, core.SourceStdin)
	if err != nil {
		return core.InputData{}, err
	}
	data.Encoding = DetectEncoding(content)
	data.Metadata["length"] = len(content)
	return data, nil
}

// FromFile reads a file, enforcing the configured size limit and
// streaming the content in chunks once it crosses the threshold.
func (r *Reader) FromFile(path string) (core.InputData, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.InputData{}, fmt.Errorf("file not found: %s: %w", path, err)
		}
		return core.InputData{}, fmt.Errorf("failed to access file %s: %w", path, err)
	}
	if info.Size() == 0 {
		return core.InputData{}, ErrFileEmpty
	}
	if !r.cfg.ValidateFileSize(info.Size()) {
		return core.InputData{}, fmt.Errorf("file %s rejected: size %d exceeds limit %d", path, info.Size(), r.cfg.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return core.InputData{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	var content []byte
	streamed := info.Size() >= r.cfg.StreamThreshold
	if streamed {
		content, err = readChunked(f, info.Size())
	} else {
		content, err = io.ReadAll(f)
	}
	if err != nil {
		return core.InputData{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	data, err := core.NewInputDataBytes(content, core.SourceFile)
	if err != nil {
		return core.InputData{}, err
	}
	data.Encoding = DetectEncoding(content)
	data.Metadata["file_path"] = path
	data.Metadata["file_size"] = info.Size()
	data.Metadata["streamed"] = streamed
	return data, nil
}

// Acquire resolves input by precedence: positional arguments, then an
// explicit file path, then piped stdin.
func (r *Reader) Acquire(args []string, filePath string) (core.InputData, error) {
	if len(args) > 0 {
		return r.FromArgs(args)
	}
	if filePath != "" {
		return r.FromFile(filePath)
	}
	return r.FromStdin()
}

func readChunked(f io.Reader, size int64) ([]byte, error) {
	buf := make([]byte, 0, size)
	reader := bufio.NewReaderSize(f, readChunkSize)
	chunk := make([]byte, readChunkSize)
	for {
		n, err := reader.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// DetectEncoding reports the text encoding of content. Valid UTF-8 is
// assumed for empty or decodable content; anything else is binary.
func DetectEncoding(content []byte) string {
	if len(content) == 0 || utf8.Valid(content) {
		return core.DefaultEncoding
	}
	return "binary"
}
