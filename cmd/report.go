package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/mushi/internal/bugreport"
)

func newReportCmd() *cobra.Command {
	var paramFlags []string
	var location string

	cmd := &cobra.Command{
		Use:   "report <template>",
		Short: "診断付きでissue URLを生成",
		Long: `テンプレートからissue URLを生成し、tracing風の診断メッセージを
stderrに出力します。URL自体はstdoutに出力されるため、
パイプやリダイレクトと組み合わせて使えます。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			params, err := parseParams(paramFlags)
			if err != nil {
				return err
			}

			if err := appConfig.Validate(); err != nil {
				return err
			}

			handle, err := appConfig.BuildHandle()
			if err != nil {
				return err
			}

			file, line := splitLocation(location)
			url := handle.ReportBugTo(name, params, file, line,
				bugreport.NewWriterOutput(cmd.ErrOrStderr()))
			if url == "" {
				// 診断にはエラー行が出力済み
				return errors.New("failed to generate bug report URL")
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "プレースホルダーの値 (key=value、繰り返し可)")
	cmd.Flags().StringVar(&location, "location", "", "診断に表示する発生位置 (file:line)")

	return cmd
}
