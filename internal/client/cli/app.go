// Package cli implements the interactive carteira client: a small REPL that
// talks to the wallet backend over HTTP. The session cookie set by login is
// kept in an in-memory cookie jar, so subsequent commands are authenticated
// the same way a browser would be.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/dmitrijs2005/carteira/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *http.Client
	reader   *bufio.Reader
	userName string
}

func NewApp(c *config.Config) (*App, error) {

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Jar: jar, Timeout: c.RequestTimeout}

	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
