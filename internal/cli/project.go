package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkoval/provenly/internal/model"
	"github.com/pkoval/provenly/internal/pipeline"
	"github.com/pkoval/provenly/internal/store"
)

var (
	projectOutJSON string
	projectOutMD   string
	projectOutHTML string
	projectTimeout time.Duration
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage attribution projects",
	Long: `Projects persist a draft and its sources between runs so sources can
be collected incrementally and attribution re-run as the draft evolves.

Example:
  provenly project create "Acme profile"
  provenly project add-source <id> notes.txt
  provenly project add-source <id> https://example.com/press-release
  provenly project set-draft <id> draft.md
  provenly project run <id> --md report.md`,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now().UTC()
		project := &model.Project{
			ID:        uuid.New().String(),
			Name:      args[0],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := st.PutProject(project); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("✓ Created project %s (%s)\n", project.Name, project.ID)
		return nil
	},
}

var projectAddSourceCmd = &cobra.Command{
	Use:   "add-source <project-id> <file-or-url>",
	Short: "Add a source file or URL to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), projectTimeout)
		defer cancel()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		project, err := st.GetProject(args[0])
		if err != nil {
			return fmt.Errorf("load project %s: %w", args[0], err)
		}

		var src model.Source
		if isURL(args[1]) {
			p := pipeline.NewPipeline(loadConfig(), st)
			fetched, errs := p.LoadSources(ctx, []string{args[1]})
			if fetchErr, ok := errs[args[1]]; ok {
				return fmt.Errorf("fetch source: %w", fetchErr)
			}
			src = fetched[0]
		} else {
			src, err = sourceFromFile(args[1])
			if err != nil {
				return err
			}
		}

		project.Sources = append(project.Sources, src)
		project.UpdatedAt = time.Now().UTC()
		if err := st.PutProject(project); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("✓ Added source %s (%s), %d total\n", src.Label, src.ID, len(project.Sources))
		return nil
	},
}

var projectSetDraftCmd = &cobra.Command{
	Use:   "set-draft <project-id> <draft-file>",
	Short: "Set or replace a project's draft text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		project, err := st.GetProject(args[0])
		if err != nil {
			return fmt.Errorf("load project %s: %w", args[0], err)
		}

		draft, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}

		project.Draft = string(draft)
		project.UpdatedAt = time.Now().UTC()
		if err := st.PutProject(project); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("✓ Set draft for %s (%d bytes)\n", project.Name, len(draft))
		return nil
	},
}

var projectRunCmd = &cobra.Command{
	Use:   "run <project-id>",
	Short: "Run attribution for a stored project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), projectTimeout)
		defer cancel()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := loadConfig()
		p := pipeline.NewPipeline(cfg, st)

		report, err := p.AttributeProject(ctx, args[0])
		if err != nil {
			return err
		}

		if err := p.RenderReport(report, projectOutJSON, projectOutMD, projectOutHTML, cfg.Output.Verbose); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		projects, err := st.ListProjects()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Println("No projects.")
			return nil
		}
		for _, project := range projects {
			draft := "no draft"
			if project.Draft != "" {
				draft = fmt.Sprintf("%d-byte draft", len(project.Draft))
			}
			fmt.Printf("%s  %s  (%d sources, %s)\n", project.ID, project.Name, len(project.Sources), draft)
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteProject(args[0]); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		fmt.Printf("✓ Deleted project %s\n", args[0])
		return nil
	},
}

func openStore() (store.Store, error) {
	st, err := store.Open(loadConfig().Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectAddSourceCmd)
	projectCmd.AddCommand(projectSetDraftCmd)
	projectCmd.AddCommand(projectRunCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	projectCmd.PersistentFlags().DurationVar(&projectTimeout, "timeout", 2*time.Minute, "overall timeout")
	projectRunCmd.Flags().StringVar(&projectOutJSON, "json", "provenance.json", "output JSON path")
	projectRunCmd.Flags().StringVar(&projectOutMD, "md", "", "output Markdown path (optional)")
	projectRunCmd.Flags().StringVar(&projectOutHTML, "html", "", "output HTML path (optional)")
}
