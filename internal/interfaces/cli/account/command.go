package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env        string
	username   string
	password   string
	fullName   string
	email      string
	superuser  bool
	department string
	role       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Staff account management",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "Grant superuser access")
	cmd.Flags().StringVar(&department, "department", "", "Department the account belongs to")
	cmd.Flags().StringVar(&role, "role", "", "Role within the department")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	accountRepo := repository.NewStaffAccountRepository(database.Get())
	profileRepo := repository.NewStaffProfileRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	uc := usecases.NewCreateAccountUseCase(accountRepo, profileRepo, hasher, log)

	result, err := uc.Execute(context.Background(), usecases.CreateAccountCommand{
		Username:   username,
		Password:   password,
		FullName:   fullName,
		Email:      email,
		Superuser:  superuser,
		Department: department,
		Role:       role,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Printf("Account '%s' created with id %d\n", result.Username, result.AccountID)
	return nil
}
