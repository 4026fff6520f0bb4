package export

import (
	"fmt"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/config"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/output"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"go.uber.org/zap"
)

// Run 把存储中的记录导出为 xlsx，path 为空时使用配置中的 export.path
func Run(configPath, path string, characters []string) error {
	s, logger, cleanup, err := config.Setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()
	if path == "" {
		path = s.Export.Path
	}

	store, closer, err := s.NewStore(logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	if len(characters) == 0 {
		if characters, err = store.List(); err != nil {
			return err
		}
	}
	builds := make([]*hsr.CharacterBuild, 0, len(characters))
	for _, c := range characters {
		b, err := store.Get(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		builds = append(builds, b)
	}

	if err := output.ExportXLSX(path, builds); err != nil {
		return err
	}
	logger.Info("exported", zap.String("path", path), zap.Int("characters", len(builds)))
	return nil
}
