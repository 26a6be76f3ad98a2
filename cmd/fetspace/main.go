package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hy4k/fets.space/internal/ai"
	"github.com/hy4k/fets.space/internal/config"
	"github.com/hy4k/fets.space/internal/db"
	"github.com/hy4k/fets.space/internal/gitsim"
	"github.com/hy4k/fets.space/internal/models"
	"github.com/hy4k/fets.space/internal/record"
	"github.com/hy4k/fets.space/internal/store"
	"github.com/hy4k/fets.space/internal/tui"
	"github.com/hy4k/fets.space/internal/tui/screens"
)

var rootCmd = &cobra.Command{
	Use:   "fetspace",
	Short: "Project portfolio dashboard for FETS centers",
	Long:  `FETS SPACE is a terminal dashboard for the center's app portfolio: browse and edit projects, track repository sync state, and keep vendor SOPs at hand.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		catalog, cleanup, err := openCatalog(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		catalog.Load(context.Background())

		users := store.StaffUsers()
		ctx := &screens.Context{
			Catalog: catalog,
			Sim:     gitsim.New(catalog),
			AI:      ai.NewClient(os.Getenv("GEMINI_API_KEY")),
			Config:  cfg,
			Users:   users,
			Current: users[0],
			MyList:  make(map[string]bool),
			Liked:   make(map[string]bool),
		}

		if err := tui.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalog into an empty record store",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Seed the %s store with the demo catalog?", cfg.Store),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
			fmt.Println("Aborted.")
			return
		}

		catalog, cleanup, err := openCatalog(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		seeded, err := catalog.SeedRemote(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
			os.Exit(1)
		}
		if !seeded {
			fmt.Println("Store already has projects; nothing to do.")
			return
		}
		fmt.Println("Demo catalog seeded.")
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a project to the catalog without launching the dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		catalog, cleanup, err := openCatalog(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		catalog.Load(context.Background())

		var draft models.Draft
		qs := []*survey.Question{
			{
				Name:     "name",
				Prompt:   &survey.Input{Message: "Project name:"},
				Validate: survey.Required,
			},
			{
				Name:   "description",
				Prompt: &survey.Input{Message: "Description:"},
			},
			{
				Name: "status",
				Prompt: &survey.Select{
					Message: "Status:",
					Options: []string{
						string(models.StatusIdea),
						string(models.StatusInProgress),
						string(models.StatusCompleted),
						string(models.StatusArchived),
					},
					Default: string(models.StatusIdea),
				},
			},
			{
				Name: "itemType",
				Prompt: &survey.Select{
					Message: "Type:",
					Options: []string{string(models.ItemApp), string(models.ItemFile)},
					Default: string(models.ItemApp),
				},
			},
			{
				Name:   "techStack",
				Prompt: &survey.Input{Message: "Tech stack (comma separated):"},
			},
			{
				Name:   "repoURL",
				Prompt: &survey.Input{Message: "Repository URL (optional):"},
			},
		}

		answers := struct {
			Name        string
			Description string
			Status      string
			ItemType    string
			TechStack   string
			RepoURL     string
		}{}
		if err := survey.Ask(qs, &answers); err != nil {
			fmt.Println("Aborted.")
			return
		}

		draft = models.Draft{
			Name:        answers.Name,
			Description: answers.Description,
			Status:      models.Status(answers.Status),
			ItemType:    models.ItemType(answers.ItemType),
			TechStack:   answers.TechStack,
			RepoURL:     answers.RepoURL,
		}

		actor := store.StaffUsers()[0]
		p, err := catalog.Create(context.Background(), draft, actor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s (%s)\n", p.Name, p.ID)
	},
}

// openCatalog builds the catalog on the record store the config selects and
// wires background persistence failures to the error log.
func openCatalog(cfg *config.Config) (*store.Catalog, func(), error) {
	var (
		records record.Store
		cleanup = func() {}
	)

	switch cfg.Store {
	case config.StoreRemote:
		if cfg.APIURL == "" {
			return nil, nil, fmt.Errorf("store is %q but api_url is not set in the config", config.StoreRemote)
		}
		records = record.NewRemoteStore(cfg.APIURL, os.Getenv("FETS_API_KEY"))
	default:
		database, err := db.OpenAndMigrate()
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		records = record.NewSQLiteStore(database)
		cleanup = func() { db.Close() }
	}

	catalog := store.NewCatalog(records)
	catalog.Logf = logError
	return catalog, cleanup, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createCmd)
}

func main() {
	// A .env next to the binary can hold GEMINI_API_KEY and FETS_API_KEY.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logError(format string, args ...any) {
	logPath, pathErr := config.ErrorLogPath()
	if pathErr != nil {
		return
	}

	if err := config.EnsureDirectories(); err != nil {
		return
	}

	f, fileErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "[%s] ", time.Now().Format(time.RFC3339))
	fmt.Fprintf(f, format+"\n", args...)
}
