package main

import (
	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd"
)

func main() {
	cmd.Execute()
}
