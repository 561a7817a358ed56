package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/phdsports/news-portal/internal/listing"
	"github.com/phdsports/news-portal/internal/rest"
)

const helpText = `commands:
  category <name>  show one category ("all" for every category)
  search <term>    search title, summary and body
  clear            clear the search
  more             load the next page
  show             print the current listing
  quit             exit
`

// shell reads commands line by line and drives a listing controller.
type shell struct {
	ctrl *listing.Controller[rest.Article]
	out  io.Writer
}

func newShell(ctrl *listing.Controller[rest.Article], out io.Writer) *shell {
	return &shell{ctrl: ctrl, out: out}
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	s.print(s.ctrl.Load(ctx))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		if !s.exec(ctx, scanner.Text()) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the shell should keep reading.
func (s *shell) exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "category", "c":
		s.print(s.ctrl.SelectCategory(ctx, arg))
	case "search", "s":
		s.print(s.ctrl.Search(ctx, arg))
	case "clear":
		s.print(s.ctrl.ClearSearch(ctx))
	case "more", "m":
		state, issued := s.ctrl.LoadMore(ctx, true)
		if !issued {
			fmt.Fprintln(s.out, "nothing more to load")
			return true
		}
		s.print(state)
	case "show":
		s.print(s.ctrl.State())
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help\n", cmd)
	}

	return true
}

func (s *shell) print(state listing.State[rest.Article]) {
	filter := "category: " + state.ActiveCategory
	if state.ActiveSearch != "" {
		filter += fmt.Sprintf(", search: %q", state.ActiveSearch)
	}
	fmt.Fprintln(s.out, filter)

	switch {
	case state.IsLoading:
		fmt.Fprintln(s.out, "loading...")
		return
	case state.Empty():
		fmt.Fprintln(s.out, "no articles found")
		return
	}

	for i, a := range state.Items {
		fmt.Fprintf(s.out, "%3d. %s  %-18s %s\n", i+1, a.PublishedOn, a.Category, a.Title)
	}

	fmt.Fprintf(s.out, "showing %d of %d", len(state.Items), state.Total)
	if state.HasMore {
		fmt.Fprint(s.out, ", type more for the next page")
	}
	fmt.Fprintln(s.out)
}
