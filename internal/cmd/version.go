package cmd

import (
	"fmt"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
)

type Version struct{}

func (v *Version) Run() error {
	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}
