package main

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/yaml"
)

// Run executes the config command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalConfig(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
