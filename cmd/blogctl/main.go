// Command blogctl appends posts to and lists a blog partition.
//
// Usage:
//
//	blogctl add -lang en -file post.json
//	blogctl list -lang es
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"portfolioapi/internal/config"
	"portfolioapi/internal/logging"
	"portfolioapi/internal/model"
	"portfolioapi/internal/postschema"
	"portfolioapi/internal/repository/jsonstore"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

var errUsage = errors.New("usage: blogctl <add|list> [flags]")

func main() {
	cfg := config.Load()
	logger, closeLog := logging.New(cfg.Log, os.Stderr)
	defer closeLog.Close()

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Error("blogctl failed", "error", err)
		closeLog.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("lang", service.DefaultLang, "language partition")
	dataDir := fs.String("data-dir", cfg.Storage.DataDir, "directory holding blog_posts_<lang>.json (file backend)")
	file := fs.String("file", "-", "post JSON file, - for stdin (add only)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	scfg := cfg.Storage
	scfg.DataDir = *dataDir
	backends, err := storage.Open(scfg, cfg.MinIO)
	if err != nil {
		return err
	}
	posts, err := jsonstore.NewPostStore(backends.Posts, jsonstore.WithLocation(cfg.Location()))
	if err != nil {
		return err
	}
	svc := service.NewBlogService(posts)

	switch args[0] {
	case "add":
		post, err := readPost(*file, stdin)
		if err != nil {
			return err
		}
		if err := svc.Create(ctx, *lang, post); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "added post %s to %s\n", post.ID, jsonstore.PartitionKey(*lang))
		return nil
	case "list":
		posts, err := svc.List(ctx, *lang)
		if err != nil {
			return err
		}
		b, err := jsonstore.Encode(posts)
		if err != nil {
			return err
		}
		_, err = stdout.Write(append(b, '\n'))
		return err
	default:
		return errUsage
	}
}

func readPost(path string, stdin io.Reader) (model.BlogPost, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("read post: %w", err)
	}

	if err := postschema.ValidatePost(raw); err != nil {
		return model.BlogPost{}, err
	}
	var post model.BlogPost
	if err := json.Unmarshal(raw, &post); err != nil {
		return model.BlogPost{}, fmt.Errorf("decode post: %w", err)
	}
	return post, nil
}
