package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vovanwin/cmdlineprefs/internal/mapping"
	"github.com/vovanwin/cmdlineprefs/internal/prefstore"
	"github.com/vovanwin/cmdlineprefs/internal/switches"
)

var errInvalidProxy = errors.New("противоречивые переключатели прокси")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "\n✗ Ошибка: %v\n", err)
		if errors.Is(err, errInvalidProxy) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run разбирает собственные флаги, а всё после "--" считает переключателями для перевода в настройки:
//
//	prefdump -format yaml -- --lang=ru --proxy-server=proxy:3128
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prefdump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	tablePath := fs.String("table", "", "TOML файл с дополнительными переключателями")
	format := fs.String("format", "yaml", "формат вывода: yaml или toml")
	strict := fs.Bool("strict", false, "завершиться с ошибкой при противоречивых переключателях прокси")
	initTable := fs.String("init-table", "", "создать пример файла таблицы и выйти")
	logLevel := fs.String("log-level", "info", "уровень логирования: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *initTable != "" {
		created, err := mapping.WriteExample(*initTable)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(stdout, "  created: %s\n", *initTable)
		} else {
			fmt.Fprintf(stdout, "  skip: %s (already exists)\n", *initTable)
		}
		return nil
	}

	table := mapping.Default()
	if *tablePath != "" {
		extra, err := mapping.ParseFile(*tablePath)
		if err != nil {
			return fmt.Errorf("таблица: %w", err)
		}
		table = mapping.Merge(table, extra)
		if err := table.Validate(); err != nil {
			return fmt.Errorf("таблица: %w", err)
		}
		logger.Debug("таблица дополнена", slog.String("path", *tablePath), slog.Int("entries", len(extra)))
		for _, e := range extra {
			logger.Debug("переключатель из таблицы",
				slog.String("switch", e.Switch.Name),
				slog.String("pref", e.PrefKey),
				slog.String("type", e.Switch.Kind.String()),
				slog.String("description", e.Description))
		}
	}

	store := prefstore.Build(switches.Parse(fs.Args()),
		prefstore.WithTable(table),
		prefstore.WithLogger(logger))

	if *strict && !store.ProxySwitchesValid() {
		return errInvalidProxy
	}

	switch *format {
	case "yaml":
		return store.WriteYAML(stdout)
	case "toml":
		return store.WriteTOML(stdout)
	default:
		return fmt.Errorf("неизвестный формат %q (допустимы: yaml, toml)", *format)
	}
}
