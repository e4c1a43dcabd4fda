package main

import (
	"fmt"
	"os"

	"fjacquet/zaim-csv/cmd/accounts"
	"fjacquet/zaim-csv/cmd/batch"
	"fjacquet/zaim-csv/cmd/configcmd"
	"fjacquet/zaim-csv/cmd/convert"
	"fjacquet/zaim-csv/cmd/root"
	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/logging"
)

func init() {
	// .env is read before viper so ZAIM_ variables it defines are visible
	config.LoadEnv(logging.NewLogrusAdapter("warn", "text"))

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
