package notify

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/remindl/remindl/pkg/logger"
)

// execService posts alerts by invoking a platform notifier binary.
// Authorization is resolved by checking that the binary exists; the
// actual OS prompt (where one exists) appears on first use.
type execService struct {
	appName string
	bin     string
	argv    func(appName, title, body string) []string
	log     logger.Logger

	// runner is swapped in tests to capture the command line.
	runner func(ctx context.Context, name string, args ...string) error
}

func newExecService(appName, bin string, argv func(appName, title, body string) []string, log logger.Logger) *execService {
	return &execService{
		appName: appName,
		bin:     bin,
		argv:    argv,
		log:     log,
		runner:  runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", name, err, string(out))
	}
	return nil
}

func (s *execService) Post(ctx context.Context, title, body string) error {
	return s.runner(ctx, s.bin, s.argv(s.appName, title, body)...)
}

func (s *execService) RequestAuthorization(ctx context.Context) (bool, error) {
	if _, err := exec.LookPath(s.bin); err != nil {
		s.log.Warning("notifier binary %s not found: %v", s.bin, err)
		return false, nil
	}
	return true, nil
}
