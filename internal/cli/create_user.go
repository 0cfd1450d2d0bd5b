package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/database"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/profile"
)

type createUserOptions struct {
	name     string
	email    string
	password string
	role     string
}

// NewCreateUserCommand creates the create-user command. It registers the
// identity and its profile the same way the admin screen does.
func NewCreateUserCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &createUserOptions{}

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateUser(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.email, "email", "", "sign-in email")
	cmd.Flags().StringVar(&opts.password, "password", "", "initial password (min 6 characters)")
	cmd.Flags().StringVar(&opts.role, "role", string(profile.RoleUser), `"user" or "super-user"`)

	return cmd
}

func runCreateUser(cmd *cobra.Command, rootOpts *RootOptions, opts *createUserOptions) error {
	errs := validation.ValidateCreateUserRequest(validation.CreateUserRequest{
		Name:     opts.name,
		Email:    opts.email,
		Password: opts.password,
		Role:     opts.role,
	})
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Message
		}
		return fmt.Errorf("invalid user: %s", strings.Join(msgs, "; "))
	}

	db, err := database.New(cmd.Context(), rootOpts.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	// Sign-up never touches session tokens, so no session store or secret is needed.
	authService := auth.NewService(auth.NewRepository(db.Pool()), nil, nil, 0, rootOpts.BcryptCost)
	gw := gateway.New(gateway.Deps{
		Auth:     authService,
		Profiles: profile.NewRepository(db.Pool()),
	})

	u, err := gw.AddUser(cmd.Context(), gateway.NewUser{
		Name:     strings.TrimSpace(opts.name),
		Email:    strings.TrimSpace(opts.email),
		Password: opts.password,
		Role:     profile.Role(opts.role),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s <%s> as %s (%s)\n", u.Name, u.Email, u.Role, u.ID)
	return nil
}
