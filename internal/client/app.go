package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mzhurov/postboard/internal/config"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/models"
)

// App is the CLI client. It dispatches one command per invocation, talking to
// the server through [ServerAPI] and keeping the login session in the local
// store between runs.
type App struct {
	api       ServerAPI
	storages  *store.ClientStorages
	serverURL string
	logger    *logger.Logger
	out       io.Writer
}

// NewApp wires the client together: local session storage, the HTTP server
// API and the output stream.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Session, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	api, err := NewHTTPServerAPI(cfg.API, logger)
	if err != nil {
		return nil, fmt.Errorf("create server api: %w", err)
	}

	return &App{
		api:       api,
		storages:  storages,
		serverURL: cfg.API.ServerURL,
		logger:    logger,
		out:       os.Stdout,
	}, nil
}

// Run implements [Client]. The first argument selects the command, the rest
// are parsed by the command itself.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return errors.New("no command given")
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "list":
		return a.list(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "replace":
		return a.replace(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "vote":
		return a.vote(ctx, rest)
	case "unvote":
		return a.unvote(ctx, rest)
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("register requires -email and -password")
	}

	user, err := a.api.Register(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	session, err := a.api.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	session.ServerURL = a.serverURL
	session.CreatedAt = time.Now()
	if err = a.storages.SessionRepository.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "logged in as user %d\n", session.UserID)
	return err
}

func (a *App) logout(ctx context.Context) error {
	if err := a.storages.SessionRepository.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) whoami(ctx context.Context) error {
	session, err := a.restoreSession(ctx)
	if err != nil {
		return err
	}

	// Токен в вывод не попадает.
	return a.printJSON(map[string]any{
		"user_id":    session.UserID,
		"server_url": session.ServerURL,
		"created_at": session.CreatedAt,
	})
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	limit := fs.Uint64("limit", 10, "maximum number of posts to return")
	offset := fs.Uint64("offset", 0, "number of posts to skip")
	search := fs.String("search", "", "filter posts by title substring")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := a.api.ListPosts(ctx, models.PostFilter{Search: *search, Limit: *limit, Offset: *offset})
	if err != nil {
		return err
	}

	return a.printJSON(posts)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, _, err := postIDArg(args)
	if err != nil {
		return err
	}

	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		return err
	}

	return a.printJSON(post)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post content")
	published := fs.Bool("published", true, "publish the post immediately")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *content == "" {
		return errors.New("create requires -title and -content")
	}
	if _, err := a.restoreSession(ctx); err != nil {
		return err
	}

	created, err := a.api.CreatePost(ctx, models.PostDraft{Title: *title, Content: *content, Published: published})
	if err != nil {
		return err
	}

	return a.printJSON(created)
}

func (a *App) replace(ctx context.Context, args []string) error {
	id, rest, err := postIDArg(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post content")
	published := fs.Bool("published", true, "publish the post")
	if err = fs.Parse(rest); err != nil {
		return err
	}
	if *title == "" || *content == "" {
		return errors.New("replace requires -title and -content")
	}
	if _, err = a.restoreSession(ctx); err != nil {
		return err
	}

	updated, err := a.api.ReplacePost(ctx, id, models.PostDraft{Title: *title, Content: *content, Published: published})
	if err != nil {
		return err
	}

	return a.printJSON(updated)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, rest, err := postIDArg(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "new post title")
	content := fs.String("content", "", "new post content")
	published := fs.Bool("published", true, "new published state")
	if err = fs.Parse(rest); err != nil {
		return err
	}

	// Only flags the user actually set make it into the patch; the rest keep
	// their server-side values.
	var patch models.PostPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "content":
			patch.Content = content
		case "published":
			patch.Published = published
		}
	})
	if patch.IsEmpty() {
		return errors.New("update requires at least one of -title, -content, -published")
	}
	if _, err = a.restoreSession(ctx); err != nil {
		return err
	}

	patched, err := a.api.PatchPost(ctx, id, patch)
	if err != nil {
		return err
	}

	return a.printJSON(patched)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, _, err := postIDArg(args)
	if err != nil {
		return err
	}
	if _, err = a.restoreSession(ctx); err != nil {
		return err
	}

	if err = a.api.DeletePost(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "post %d deleted\n", id)
	return err
}

func (a *App) vote(ctx context.Context, args []string) error {
	id, _, err := postIDArg(args)
	if err != nil {
		return err
	}
	if _, err = a.restoreSession(ctx); err != nil {
		return err
	}

	if err = a.api.CastVote(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "voted on post %d\n", id)
	return err
}

func (a *App) unvote(ctx context.Context, args []string) error {
	id, _, err := postIDArg(args)
	if err != nil {
		return err
	}
	if _, err = a.restoreSession(ctx); err != nil {
		return err
	}

	if err = a.api.RetractVote(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "vote on post %d retracted\n", id)
	return err
}

// restoreSession loads the saved login session and arms the API client with
// its token. Commands that need authentication call this first.
func (a *App) restoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.storages.SessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoActiveSession
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.api.SetToken(session.Token)

	return session, nil
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, `usage: postboard <command> [flags]

account:
  register -email <email> -password <password>
  login    -email <email> -password <password>
  logout
  whoami

posts:
  list    [-limit n] [-offset n] [-search text]
  get     <id>
  create  -title <title> -content <content> [-published=false]
  replace <id> -title <title> -content <content> [-published=false]
  update  <id> [-title <title>] [-content <content>] [-published=<bool>]
  delete  <id>

votes:
  vote   <id>
  unvote <id>
`)
}

// postIDArg parses the leading positional post id. Flags for the command
// follow the id, so the remaining arguments are returned for FlagSet parsing.
func postIDArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("post id argument is required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, nil, fmt.Errorf("invalid post id %q", args[0])
	}

	return id, args[1:], nil
}
