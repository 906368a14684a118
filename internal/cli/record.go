package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Patient record commands",
	}

	cmd.AddCommand(newRecordListCmd())
	cmd.AddCommand(newRecordShowCmd())
	cmd.AddCommand(newRecordCreateCmd())
	cmd.AddCommand(newRecordDeleteCmd())
	cmd.AddCommand(newRecordNoteCmd())

	return cmd
}

func newRecordListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patient records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RecordListResult

			if err := client.Get("/api/v1/records", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRecordShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a record with its evolution history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RecordResult

			if err := client.Get("/api/v1/records/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRecordCreateCmd() *cobra.Command {
	var name, birth, profession, diagnosis, visit, note string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new patient record",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"nome":             name,
				"data_nascimento":  birth,
				"profissao":        profession,
				"diagnostico":      diagnosis,
				"data_atendimento": visit,
				"evolucao_inicial": note,
			}
			var result RecordResult

			if err := client.Post("/api/v1/records", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Patient full name (required)")
	cmd.Flags().StringVar(&birth, "birth", "", "Birth date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&profession, "profession", "", "Profession")
	cmd.Flags().StringVar(&diagnosis, "diagnosis", "", "Diagnosis (required)")
	cmd.Flags().StringVar(&visit, "visit", "", "Visit date, YYYY-MM-DD")
	cmd.Flags().StringVar(&note, "note", "", "Initial evolution text")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("diagnosis")

	return cmd
}

func newRecordDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DeletedRecordResult

			if err := client.Delete("/api/v1/records/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
			} else {
				out.PrintMessage(fmt.Sprintf("Record %d (%s) deleted permanently", result.ID, result.Name))
			}
			return nil
		},
	}
}

func newRecordNoteCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "note <id>",
		Short: "Append an evolution note to a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"texto": text}
			var result RecordResult

			if err := client.Post("/api/v1/records/"+args[0]+"/evolutions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Evolution text (required)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
