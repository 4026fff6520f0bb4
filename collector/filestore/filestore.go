package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"go.uber.org/zap"
)

const ext = ".json"

// Store keeps one JSON file per character: <dir>/<character>.json.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) path(character string) string {
	return filepath.Join(s.dir, character+ext)
}

func (s *Store) Put(character string, build *hsr.CharacterBuild) error {
	data, err := json.MarshalIndent(build, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", character, err)
	}
	// 先写临时文件再改名，避免中断时留下半个文件
	tmp := s.path(character) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(character)); err != nil {
		return err
	}
	s.logger.Info("saved",
		zap.String("file", s.path(character)),
		zap.String("size", fmt.Sprintf("%.2f KB", float64(len(data))/1024)),
	)
	return nil
}

func (s *Store) Get(character string) (*hsr.CharacterBuild, error) {
	data, err := os.ReadFile(s.path(character))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, collector.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var b hsr.CharacterBuild
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", character, err)
	}
	return &b, nil
}

func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(ids)
	return ids, nil
}
