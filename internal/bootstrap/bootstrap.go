package bootstrap

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	celebrationinadapter "goalcheer/internal/modules/celebration/adapter/in"
	celebrationoutadapter "goalcheer/internal/modules/celebration/adapter/out"
	celebrationservice "goalcheer/internal/modules/celebration/service"
	celebrationusecase "goalcheer/internal/modules/celebration/usecase"
	goalsinadapter "goalcheer/internal/modules/goals/adapter/in"
	goalsoutadapter "goalcheer/internal/modules/goals/adapter/out"
	goalsservice "goalcheer/internal/modules/goals/service"
	goalsusecase "goalcheer/internal/modules/goals/usecase"
	"goalcheer/internal/platform/clock"
	"goalcheer/internal/platform/config"
	"goalcheer/internal/platform/id"
	"goalcheer/internal/platform/random"
	uiapp "goalcheer/internal/ui/app"
)

type App struct {
	Config   config.Config
	Log      hclog.Logger
	GoalsCLI goalsinadapter.CLIHandler

	store *goalsoutadapter.SQLiteGoalStore
}

func New(cfg config.Config, log hclog.Logger) (*App, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	store, err := goalsoutadapter.NewSQLiteGoalStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new goal store: %w", err)
	}
	goalsUC := goalsusecase.NewInteractor(
		goalsservice.NewGoalService(clock.SystemClock{}, id.ShortHex{}, store),
		goalsoutadapter.NewMarkdownExporter(cfg.ExportDir),
	)
	log.Debug("app ready", "db", cfg.DBPath, "frame_rate", cfg.FrameRate)
	return &App{
		Config:   cfg,
		Log:      log,
		GoalsCLI: goalsinadapter.NewCLIHandler(goalsUC),
		store:    store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// terminalStage builds the celebration adapters for a terminal session and
// the handler that drives them. The viewport starts empty and is sized by the
// first window size message.
func (a *App) terminalStage() (uiapp.Stage, celebrationinadapter.TUIHandler) {
	stage := uiapp.Stage{
		Scheduler: celebrationoutadapter.NewTeaScheduler(a.Config.FrameRate),
		Hearts:    celebrationoutadapter.NewHeartLayer(a.Config.FrameRate, time.Now),
		Surface:   celebrationoutadapter.NewCanvasSurface(),
		Viewport:  celebrationoutadapter.NewViewport(0, 0),
		Overlay:   celebrationoutadapter.NewOverlay(),
	}
	ctrl := celebrationservice.NewController(
		stage.Scheduler,
		stage.Surface,
		stage.Overlay,
		stage.Hearts,
		stage.Viewport,
		random.System{},
		a.Log.Named("celebration"),
	)
	return stage, celebrationinadapter.NewTUIHandler(celebrationusecase.NewInteractor(ctrl))
}

func RunTUI(app *App) error {
	stage, celebration := app.terminalStage()
	model := uiapp.NewModel(app.GoalsCLI, celebration, stage)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// RunCelebrate plays the celebration once in the terminal.
func RunCelebrate(app *App) error {
	stage, celebration := app.terminalStage()
	program := tea.NewProgram(uiapp.NewShowcase(celebration, stage), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
