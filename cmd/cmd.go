package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjkmxy/fle2/std/log"
	"github.com/zjkmxy/fle2/std/utils"
	"github.com/zjkmxy/fle2/tools/qe"
)

var logLevel string

var CmdFle2 = &cobra.Command{
	Use:   "fle2",
	Short: "Queryable Encryption payload tools",
	Long: `Queryable Encryption payload tools

Builds the client side payloads used to query encrypted
range indexed fields.`,
	Version: utils.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.Default().SetLevel(level)
		return nil
	},
}

func init() {
	cobra.EnableCommandSorting = false
	CmdFle2.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdFle2.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdFle2.PersistentFlags().Lookup("help").Hidden = true
	CmdFle2.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")

	CmdFle2.AddGroup(&cobra.Group{ID: "payload", Title: "Payloads"})
	CmdFle2.AddCommand(qe.CmdFindRange())

	CmdFle2.AddGroup(&cobra.Group{ID: "key", Title: "Keys"})
	CmdFle2.AddCommand(qe.CmdKeygen())
}
