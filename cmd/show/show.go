package show

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/config"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/output"
)

// Run 打印已保存的角色记录，asJSON 时输出原始 json
func Run(configPath string, characters []string, asJSON bool) error {
	s, logger, cleanup, err := config.Setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

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
	for _, c := range characters {
		b, err := store.Get(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(b); err != nil {
				return err
			}
			continue
		}
		output.RenderBuild(os.Stdout, b)
	}
	return nil
}
