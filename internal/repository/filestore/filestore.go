package filestore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"subrewriter/internal/domain/models"

	"github.com/rs/zerolog"
)

var (
	ErrAbsPath    = errors.New("failed to get absolute path")
	ErrOpenFile   = errors.New("failed to open file")
	ErrReadSource = errors.New("failed to read source from file")
	ErrSetSource  = errors.New("failed to set source in storage")
)

// SourceStorage - ограниченный интерфейс для загрузки источников
type SourceStorage interface {
	SourceCreate(ctx context.Context, src models.Source) (models.Source, error)
}

// Load reads JSON lines of {"name": ..., "url": ...} into storage and returns
// the number of sources loaded. A missing file or empty path loads nothing.
// Invalid lines are logged and skipped.
func Load(ctx context.Context, log zerolog.Logger, filePath string, storage SourceStorage) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, logError(log, err, "context error")
	}

	if filePath == "" {
		log.Info().Msg("No sources file provided - using empty registry")
		return 0, nil
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return 0, logAndWrapError(log, err, ErrAbsPath, "get absolute path")
	}

	file, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", absPath).Msg("Sources file does not exist - using empty registry")
			return 0, nil
		}
		return 0, logAndWrapError(log, err, ErrOpenFile, "open file")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	loaded := 0
	lineNo := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return loaded, logError(log, err, "context error")
		}
		lineNo++

		data := strings.TrimSpace(scanner.Text())
		if data == "" || strings.HasPrefix(data, "#") {
			continue
		}

		var src models.Source
		if err := json.Unmarshal([]byte(data), &src); err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("Failed to unmarshal source, skipping line")
			continue
		}

		if err := validateSource(src); err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("Invalid source, skipping line")
			continue
		}

		stored, err := storeSource(ctx, src, storage, log)
		if err != nil {
			return loaded, err
		}
		if stored {
			loaded++
		}
	}

	if err := scanner.Err(); err != nil {
		return loaded, logAndWrapError(log, err, ErrReadSource, "read file")
	}

	log.Info().Int("count", loaded).Str("path", absPath).Msg("Sources loaded")
	return loaded, nil
}

func validateSource(src models.Source) error {
	if strings.TrimSpace(src.Name) == "" {
		return fmt.Errorf("%w: empty name", models.ErrInvalidData)
	}

	u, err := url.Parse(strings.TrimSpace(src.URL))
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidData, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute http(s)", models.ErrInvalidData)
	}
	return nil
}

func storeSource(ctx context.Context, src models.Source, storage SourceStorage, log zerolog.Logger) (bool, error) {
	_, err := storage.SourceCreate(ctx, src)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, models.ErrExists) {
		log.Debug().Str("name", src.Name).Msg("Source already registered")
		return false, nil
	}

	if errors.Is(err, models.ErrConflict) {
		log.Warn().Str("name", src.Name).Msg("Skipping duplicate source name")
		return false, nil
	}

	return false, logAndWrapError(log, err, ErrSetSource, "set source in storage")
}

func logError(log zerolog.Logger, err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	return err
}

func logAndWrapError(log zerolog.Logger, err error, wrapErr error, context string) error {
	log.Error().Err(err).Str("context", context).Msg(wrapErr.Error())
	return fmt.Errorf("%w: %v", wrapErr, err)
}
