package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitcoach/internal/bootstrap"
	authdto "fitcoach/internal/modules/auth/dto"
	profiledto "fitcoach/internal/modules/profile/dto"
	"fitcoach/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "fitcoach",
		Short:         "Terminal client for the FitCoach AI trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newWhoamiCmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	root.AddCommand(newSignupCmd(&configPath))
	root.AddCommand(newVerifyCmd(&configPath))
	root.AddCommand(newRecoverCmd(&configPath))
	root.AddCommand(newProfileCmd(&configPath))
	root.AddCommand(newChatCmd(&configPath))
	root.AddCommand(newAnalysisCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func withApp(configPath *string, run func(app *bootstrap.App) error) error {
	app, err := loadApp(*configPath)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return run(app)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the FitCoach terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(configPath, bootstrap.RunTUI)
		},
	}
}

func newWhoamiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out := app.SessionCLI.Whoami(context.Background())
				if !out.Authenticated {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
					return nil
				}
				state := "profile incomplete"
				if out.ProfileComplete {
					state = "profile complete"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in (%s)\n", state)
				return nil
			})
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.Login(context.Background(), email, password)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), orDefault(out.Message, "signed in"))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the server session and clear local state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.SessionCLI.Signout(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
				return nil
			})
		},
	}
}

func newSignupCmd(configPath *string) *cobra.Command {
	var email, username, password, repeat string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.Signup(context.Background(), email, username, password, repeat)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), orDefault(out.Message, "account created, check your inbox"))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "verify with: fitcoach verify --ref %s --code <code>\n", out.EncryptedEmail)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&repeat, "repeat", "", "password repeated")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("repeat")
	return cmd
}

func newVerifyCmd(configPath *string) *cobra.Command {
	var ref, code string
	var resend bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an account with the emailed code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				ctx := context.Background()
				prepared, err := app.AuthCLI.PrepareCodeScreen(ctx, ref, "")
				if err != nil {
					return err
				}
				if resend {
					out, err := app.AuthCLI.ResendEmail(ctx, prepared.Email)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), orDefault(out.Message, "code sent again"))
					return nil
				}
				out, err := app.AuthCLI.CheckCode(ctx, prepared.Email, code)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), orDefault(out.Message, "account verified"))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "encrypted email reference from signup")
	cmd.Flags().StringVar(&code, "code", "", "6-digit verification code")
	cmd.Flags().BoolVar(&resend, "resend", false, "resend the code instead of verifying")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}

func newRecoverCmd(configPath *string) *cobra.Command {
	recovery := &cobra.Command{Use: "recover", Short: "Password recovery flow"}

	var email string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Look the account up and start the reset flow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.CheckEmail(context.Background(), email, "password")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", out.Status)
				switch out.Status {
				case authdto.StatusPending:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "verify first: fitcoach verify --ref %s --code <code>\n", out.EncryptedEmail)
				case authdto.StatusInactive:
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "this account is inactive")
				default:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "now run: fitcoach recover finish --email %s --password <new> --repeat <new>\n", email)
				}
				return nil
			})
		},
	}
	startCmd.Flags().StringVar(&email, "email", "", "account email")
	_ = startCmd.MarkFlagRequired("email")

	var finishEmail, password, repeat string
	finishCmd := &cobra.Command{
		Use:   "finish",
		Short: "Set the new password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.AuthCLI.ChangePassword(context.Background(), finishEmail, password, repeat); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "password changed")
				return nil
			})
		},
	}
	finishCmd.Flags().StringVar(&finishEmail, "email", "", "account email")
	finishCmd.Flags().StringVar(&password, "password", "", "new password")
	finishCmd.Flags().StringVar(&repeat, "repeat", "", "new password repeated")
	_ = finishCmd.MarkFlagRequired("email")
	_ = finishCmd.MarkFlagRequired("password")
	_ = finishCmd.MarkFlagRequired("repeat")

	recovery.AddCommand(startCmd, finishCmd)
	return recovery
}

func newProfileCmd(configPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile commands"}

	var weight, height, age int
	var gender string
	completeCmd := &cobra.Command{
		Use:   "complete",
		Short: "Save the initial profile stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.ProfileCLI.SaveInitial(context.Background(), weight, height, age, gender); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "profile saved")
				return nil
			})
		},
	}
	completeCmd.Flags().IntVar(&weight, "weight", 0, "weight in kg")
	completeCmd.Flags().IntVar(&height, "height", 0, "height in cm")
	completeCmd.Flags().IntVar(&age, "age", 0, "age in years")
	completeCmd.Flags().StringVar(&gender, "gender", "", "male|female|other")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the account settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.ProfileCLI.Account(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username: %s\nemail:    %s\nweight:   %d kg\nheight:   %d cm\nage:      %d\ngender:   %s\n",
					out.Username, out.Email, out.Weight, out.Height, out.Age, out.Gender)
				return nil
			})
		},
	}

	var username, password string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the account settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				err := app.ProfileCLI.SaveAccount(context.Background(), profiledto.AccountInput{
					Username: username,
					Password: password,
					Weight:   weight,
					Height:   height,
					Age:      age,
					Gender:   gender,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings saved")
				return nil
			})
		},
	}
	updateCmd.Flags().StringVar(&username, "username", "", "new username")
	updateCmd.Flags().StringVar(&password, "password", "", "new password (optional)")
	updateCmd.Flags().IntVar(&weight, "weight", 0, "weight in kg")
	updateCmd.Flags().IntVar(&height, "height", 0, "height in cm")
	updateCmd.Flags().IntVar(&age, "age", 0, "age in years")
	updateCmd.Flags().StringVar(&gender, "gender", "", "male|female|other")

	profile.AddCommand(completeCmd, showCmd, updateCmd)
	return profile
}

func newChatCmd(configPath *string) *cobra.Command {
	chat := &cobra.Command{Use: "chat", Short: "Talk to the AI trainer"}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation so far",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.ChatCLI.History(context.Background())
				if err != nil {
					return err
				}
				for _, message := range out.Messages {
					who := "trainer"
					if message.IsUser {
						who = "you"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", who, message.Content)
				}
				return nil
			})
		},
	}

	sendCmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send one message and print the reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.ChatCLI.Send(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
				return nil
			})
		},
	}

	chat.AddCommand(historyCmd, sendCmd)
	return chat
}

func newAnalysisCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analysis",
		Short: "Request the personalized fitness analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				out, err := app.ChatCLI.SendAnalysis(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
				return nil
			})
		},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
