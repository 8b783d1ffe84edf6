package bootstrap

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	authinadapter "fitcoach/internal/modules/auth/adapter/in"
	authoutadapter "fitcoach/internal/modules/auth/adapter/out"
	authservice "fitcoach/internal/modules/auth/service"
	authusecase "fitcoach/internal/modules/auth/usecase"
	chatinadapter "fitcoach/internal/modules/chat/adapter/in"
	chatoutadapter "fitcoach/internal/modules/chat/adapter/out"
	chatservice "fitcoach/internal/modules/chat/service"
	chatusecase "fitcoach/internal/modules/chat/usecase"
	profileinadapter "fitcoach/internal/modules/profile/adapter/in"
	profileoutadapter "fitcoach/internal/modules/profile/adapter/out"
	profileservice "fitcoach/internal/modules/profile/service"
	profileusecase "fitcoach/internal/modules/profile/usecase"
	sessioninadapter "fitcoach/internal/modules/session/adapter/in"
	sessionoutadapter "fitcoach/internal/modules/session/adapter/out"
	sessionservice "fitcoach/internal/modules/session/service"
	sessionusecase "fitcoach/internal/modules/session/usecase"
	"fitcoach/internal/platform/clock"
	"fitcoach/internal/platform/config"
	"fitcoach/internal/platform/httpclient"
	"fitcoach/internal/platform/logging"
	uiapp "fitcoach/internal/ui/app"
	chatview "fitcoach/internal/ui/views/chat"
)

// App is the wired object graph. Handlers are grouped per module; the
// CLI commands and the terminal UI both drive them.
type App struct {
	Cfg config.Config

	SessionCLI sessioninadapter.CLIHandler
	AuthCLI    authinadapter.CLIHandler
	ProfileCLI profileinadapter.CLIHandler
	ChatCLI    chatinadapter.CLIHandler

	Google *authoutadapter.CallbackServer
	Speech *chatoutadapter.CommandSpeech

	store  *sessionoutadapter.SQLiteStateStore
	logger io.Closer
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	logCloser, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	store, err := sessionoutadapter.NewSQLiteStateStore(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	jar, err := sessionoutadapter.NewPersistentJar(cfg.BaseURL, store, clock.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("restore cookie jar: %w", err)
	}
	api := httpclient.New(cfg.BaseURL, jar, cfg.RequestTimeout)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(sessionoutadapter.NewRESTProbe(api)),
		store,
	)

	authAPI := authoutadapter.NewRESTAuth(api)
	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(authAPI),
		authAPI,
		authoutadapter.NewIdentityBridge(sessionUC),
	)

	profileUC := profileusecase.NewInteractor(
		profileservice.NewProfileService(profileoutadapter.NewRESTProfile(api)),
	)

	chatAPI := chatoutadapter.NewRESTChat(api)
	chatUC := chatusecase.NewInteractor(
		chatservice.NewChatService(chatAPI),
		chatAPI,
		chatoutadapter.NewStatsBridge(profileUC),
	)

	var speech *chatoutadapter.CommandSpeech
	if cfg.SpeechCommand != "" {
		speech = chatoutadapter.NewCommandSpeech(cfg.SpeechCommand)
	}

	return &App{
		Cfg:        cfg,
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		ProfileCLI: profileinadapter.NewCLIHandler(profileUC),
		ChatCLI:    chatinadapter.NewCLIHandler(chatUC),
		Google:     authoutadapter.NewCallbackServer(cfg.OAuth.CallbackPort),
		Speech:     speech,
		store:      store,
		logger:     logCloser,
	}, nil
}

// Close releases the state store and the log file.
func (a *App) Close() error {
	var first error
	if err := a.store.Close(); err != nil {
		first = err
	}
	if err := a.logger.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

func RunTUI(app *App) error {
	// The UI treats a nil SpeechPort as voice-disabled; a typed nil
	// pointer would not compare equal to nil there.
	var speech chatview.SpeechPort
	if app.Speech != nil {
		speech = app.Speech
	}
	model := uiapp.NewModel(
		app.Cfg.BaseURL,
		app.SessionCLI,
		app.AuthCLI,
		app.ProfileCLI,
		app.ChatCLI,
		speech,
		app.Google,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
