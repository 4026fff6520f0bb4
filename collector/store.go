package collector

import (
	"errors"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
)

// ErrNotFound is returned by Get when no record is stored for the character.
var ErrNotFound = errors.New("record not found")

// Store 持久化每个角色的构筑记录，以角色 id 为键
type Store interface {
	Put(character string, build *hsr.CharacterBuild) error
	Get(character string) (*hsr.CharacterBuild, error)
	List() ([]string, error)
}
