package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-search-agent/internal/observability"
	"github.com/jonathan/job-search-agent/internal/session"
	"github.com/jonathan/job-search-agent/internal/types"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive job search session",
	Long: `Walk through onboarding (name, resume, preferences), then search for jobs, track them
through the pipeline and draft outreach. State lives only as long as the session. Type "help" for commands.`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringVar(&serverURL, "server", "", "Call a running server at this URL instead of the model directly")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, _ []string) error {
	sh := newShell(backend(), cmd.InOrStdin(), cmd.OutOrStdout())
	return sh.run(commandContext(cmd))
}

const shellHelp = `Onboarding:
  name <text>            set your name
  paste                  paste resume text, end with a line containing only "."
  resume <file>          load resume from a file (plain text only)
  titles <a, b>          target titles
  location <text>        preferred location
  keywords <a, b>        search keywords
  next | back            move between onboarding steps
Main view:
  search                 search for jobs with the current profile
  jobs | pipeline        show search results or the pipeline board
  interested <job>       mark a new job as interested
  applied <job>          mark a job as applied
  interviewing <job>     mark a job as interviewing
  move <job> <status>    move a job to interested, applied or interviewing
  draft <job>            draft outreach and look up the hiring manager
  regenerate [all]       redo the draft (and the lookup with "all")
  edit                   replace the draft, end with a line containing only "."
  show                   show the outreach tab
  tab <name>             switch tabs (search, pipeline, outreach)
  profile | help | quit
<job> is a row number from "jobs" or a job id.`

// shell is a line-oriented front end over a session.Controller.
type shell struct {
	ctrl    *session.Controller
	printer *observability.Printer
	in      *bufio.Scanner
	out     io.Writer
}

func newShell(a session.Assistant, in io.Reader, out io.Writer) *shell {
	opts := []session.ControllerOption{}
	if logger != nil {
		opts = append(opts, session.WithControllerLogger(logger))
	}
	return &shell{
		ctrl:    session.NewController(a, opts...),
		printer: observability.NewPrinter(out),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

//nolint:errcheck // writing to the terminal
func (sh *shell) run(ctx context.Context) error {
	fmt.Fprintln(sh.out, "Job search assistant. Type \"help\" for commands.")
	sh.prompt()

	for sh.in.Scan() {
		line := strings.TrimSpace(sh.in.Text())
		if line == "" {
			sh.prompt()
			continue
		}
		if quit := sh.execute(ctx, line); quit {
			return nil
		}
		sh.prompt()
	}
	return sh.in.Err()
}

// execute runs one command line and reports whether the session should end.
//
//nolint:errcheck // writing to the terminal
func (sh *shell) execute(ctx context.Context, line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "name":
		sh.dispatch(ctx, session.SetName{Name: arg})
	case "paste":
		sh.dispatch(ctx, session.SetResume{Text: sh.readBlock()})
	case "resume":
		sh.uploadResume(ctx, arg)
	case "titles":
		sh.dispatch(ctx, session.SetTargetTitles{Titles: types.SplitList(arg)})
	case "location":
		sh.dispatch(ctx, session.SetLocation{Location: arg})
	case "keywords":
		sh.dispatch(ctx, session.SetKeywords{Keywords: types.SplitList(arg)})
	case "next":
		sh.dispatch(ctx, session.NextStep{})
	case "back":
		sh.dispatch(ctx, session.PrevStep{})
	case "profile":
		sh.printer.PrintProfile(sh.ctrl.Snapshot().Profile)
	case "search":
		sh.dispatch(ctx, session.Search{})
	case "jobs":
		sh.printer.PrintJobs(sh.ctrl.Snapshot().Jobs)
	case "pipeline":
		sh.dispatch(ctx, session.SelectTab{Tab: session.TabPipeline})
	case "interested", "applied", "interviewing":
		id, ok := sh.resolveJob(arg)
		if !ok {
			break
		}
		switch command {
		case "interested":
			sh.dispatch(ctx, session.MarkInterested{JobID: id})
		case "applied":
			sh.dispatch(ctx, session.MarkApplied{JobID: id})
		default:
			sh.dispatch(ctx, session.MarkInterviewing{JobID: id})
		}
	case "draft":
		if id, ok := sh.resolveJob(arg); ok {
			sh.dispatch(ctx, session.DraftOutreach{JobID: id})
		}
	case "regenerate":
		sh.dispatch(ctx, session.Regenerate{IncludeManager: arg == "all"})
	case "edit":
		sh.dispatch(ctx, session.EditDraft{Text: sh.readBlock()})
	case "show":
		sh.dispatch(ctx, session.SelectTab{Tab: session.TabOutreach})
	case "move":
		sh.moveJob(ctx, arg)
	case "tab":
		tab := session.Tab(strings.ToLower(arg))
		if !tab.Valid() {
			names := make([]string, len(session.Tabs))
			for i, t := range session.Tabs {
				names[i] = string(t)
			}
			fmt.Fprintf(sh.out, "! Unknown tab %q. Choose one of: %s\n", arg, strings.Join(names, ", "))
			break
		}
		sh.dispatch(ctx, session.SelectTab{Tab: tab})
	default:
		fmt.Fprintf(sh.out, "Unknown command %q. Type \"help\" for commands.\n", command)
	}
	return false
}

// dispatch applies action, reports any calls it started, waits for them and
// renders the result.
//
//nolint:errcheck // writing to the terminal
func (sh *shell) dispatch(ctx context.Context, action session.Action) {
	before := sh.ctrl.Snapshot()
	sh.ctrl.Dispatch(ctx, action)
	started := sh.ctrl.Snapshot()

	busy := false
	if started.Searching && !before.Searching {
		fmt.Fprintln(sh.out, "Searching for jobs...")
		busy = true
	}
	if started.GeneratingDraft {
		fmt.Fprintln(sh.out, "Drafting outreach message...")
		busy = true
	}
	if started.FindingManager {
		fmt.Fprintln(sh.out, "Looking up the hiring manager...")
		busy = true
	}
	if busy {
		sh.ctrl.Wait()
	}

	sh.render(action, before, sh.ctrl.Snapshot())
}

//nolint:errcheck // writing to the terminal
func (sh *shell) render(action session.Action, before, s session.State) {
	if s.Notice != "" {
		fmt.Fprintln(sh.out, "! "+s.Notice)
		sh.ctrl.Dispatch(context.Background(), session.DismissNotice{})
	}
	if s.Onboarding {
		return
	}
	if before.Onboarding {
		fmt.Fprintln(sh.out, "Profile complete.")
	}

	switch s.ActiveTab {
	case session.TabSearch:
		if _, searched := action.(session.Search); searched || before.Onboarding {
			sh.printer.PrintJobs(s.Jobs)
		}
	case session.TabPipeline:
		sh.printer.PrintPipeline(session.Pipeline(s))
	case session.TabOutreach:
		job, ok := s.SelectedJob()
		if !ok {
			fmt.Fprintln(sh.out, "No job selected. Use \"draft <job>\" first.")
			return
		}
		switch {
		case s.ManagerError != "":
			fmt.Fprintln(sh.out, "Hiring manager: "+s.ManagerError)
		default:
			sh.printer.PrintHiringManager(s.HiringManager)
		}
		if s.DraftError == "" {
			sh.printer.PrintDraft(job, s.Draft)
		}
	}
}

//nolint:errcheck // writing to the terminal
func (sh *shell) prompt() {
	s := sh.ctrl.Snapshot()
	if !s.Onboarding {
		fmt.Fprintf(sh.out, "[%s] > ", s.ActiveTab)
		return
	}

	switch s.Step {
	case session.StepName:
		fmt.Fprintln(sh.out, "Step 1/3: set your name with \"name <text>\", then \"next\".")
	case session.StepResume:
		fmt.Fprintln(sh.out, "Step 2/3: add your resume with \"paste\" or \"resume <file>\", then \"next\".")
	case session.StepPreferences:
		sh.printer.PrintProfile(s.Profile)
		fmt.Fprintln(sh.out, "Step 3/3: adjust \"titles\", \"location\" and \"keywords\", then \"next\" to search.")
	}
	fmt.Fprint(sh.out, "> ")
}

// readBlock reads lines until one containing only ".".
func (sh *shell) readBlock() string {
	var lines []string
	for sh.in.Scan() {
		line := sh.in.Text()
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

//nolint:errcheck // writing to the terminal
func (sh *shell) uploadResume(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(sh.out, "! Could not read %s: %v\n", path, err)
		return
	}
	sh.dispatch(ctx, session.UploadResume{
		Filename:    path,
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        data,
	})
}

// moveJob handles "move <job> <status>".
//
//nolint:errcheck // writing to the terminal
func (sh *shell) moveJob(ctx context.Context, arg string) {
	ref, name, _ := strings.Cut(arg, " ")
	status, err := types.ParseJobStatus(name)
	if err != nil {
		fmt.Fprintf(sh.out, "! %v\n", err)
		return
	}
	id, ok := sh.resolveJob(ref)
	if !ok {
		return
	}

	switch status {
	case types.StatusInterested:
		sh.dispatch(ctx, session.MarkInterested{JobID: id})
	case types.StatusApplied:
		sh.dispatch(ctx, session.MarkApplied{JobID: id})
	case types.StatusInterviewing:
		sh.dispatch(ctx, session.MarkInterviewing{JobID: id})
	default:
		fmt.Fprintf(sh.out, "! Jobs cannot be moved back to %s\n", status)
	}
}

// resolveJob maps a row number or id to a job id.
//
//nolint:errcheck // writing to the terminal
func (sh *shell) resolveJob(ref string) (string, bool) {
	jobs := sh.ctrl.Snapshot().Jobs
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(jobs) {
		return jobs[n-1].ID, true
	}
	for _, job := range jobs {
		if job.ID == ref {
			return job.ID, true
		}
	}
	fmt.Fprintf(sh.out, "! No job %q. Use \"jobs\" to list them.\n", ref)
	return "", false
}
