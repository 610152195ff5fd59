package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

const (
	defaultDays        = 3
	defaultDestination = "Your Destination"
	generatedByLine    = "Generated by Bagpack AI Travel Assistant"
	timestampLayout    = "January 02, 2006 at 03:04 PM"
)

// Metadata is the trip summary rendered into the document header.
type Metadata struct {
	Destination string
	DateRange   string
	Budget      string
	People      string
	Days        int
}

// BuildMetadata derives the document header fields from the request. Every
// field is defaulted rather than rejected: absent values render as "Not
// specified" style placeholders, never as errors.
func BuildMetadata(places []types.Place, opts types.TripOptions, now time.Time) Metadata {
	destination := defaultDestination
	if len(places) > 0 && places[0].Name != "" {
		destination = strings.TrimSpace(strings.SplitN(places[0].Name, ",", 2)[0])
	}

	days := CoerceDays(opts.Days)
	start := now
	end := start.AddDate(0, 0, days-1)
	dateRange := start.Format("January 02") + " - " + end.Format("January 02, 2006")
	if days == 1 {
		dateRange = start.Format("January 02, 2006")
	}

	budget := "Not specified"
	if s := formatBudget(opts.Budget); s != "" {
		budget = s
	}

	people := "1"
	if s := coercePeople(opts.People); s != "" {
		people = s
	}

	return Metadata{
		Destination: destination,
		DateRange:   dateRange,
		Budget:      budget,
		People:      people,
		Days:        days,
	}
}

// CoerceDays turns the loosely typed day count into a positive integer.
// Non-numeric, missing, and non-positive values all resolve to the default
// so date arithmetic can never fault.
func CoerceDays(v any) int {
	switch d := v.(type) {
	case nil:
		return defaultDays
	case int:
		if d > 0 {
			return d
		}
	case float64:
		if d > 0 {
			return int(d)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(d)); err == nil && n > 0 {
			return n
		}
	}
	return defaultDays
}

func coercePeople(v any) string {
	switch p := v.(type) {
	case int:
		if p > 0 {
			return strconv.Itoa(p)
		}
	case float64:
		if p > 0 {
			return strconv.Itoa(int(p))
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && n > 0 {
			return strconv.Itoa(n)
		}
	}
	return ""
}

// formatBudget renders the budget with thousands separators when numeric,
// passes strings through, and returns "" for anything unusable.
func formatBudget(v any) string {
	switch b := v.(type) {
	case int:
		return groupThousands(int64(b))
	case float64:
		return groupThousands(int64(b))
	case string:
		s := strings.TrimSpace(b)
		if s == "" {
			return ""
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return groupThousands(int64(n))
		}
		return s
	}
	return ""
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

type latexData struct {
	Metadata
	Theme      Theme
	Content    string
	MapSection string
	Generated  string
	DayWord    string
	PeopleWord string
	TitleRule  string
}

var latexTemplate = template.Must(template.New("itinerary").Delims("<<", ">>").Parse(`
\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{geometry}
\usepackage{graphicx}
\usepackage{xcolor}
\usepackage{titling}
\usepackage{fancyhdr}
\usepackage{tcolorbox}
\usepackage{enumitem}
\usepackage{setspace}
\usepackage{parskip}
<<.Theme.FontPackage>>

% Page geometry
\geometry{
    <<.Theme.Geometry>>,
    headheight=1.5cm,
    headsep=0.5cm
}

% Define colors
\definecolor{primary}{rgb}{<<.Theme.Primary.LaTeX>>}
\definecolor{secondary}{rgb}{<<.Theme.Secondary.LaTeX>>}
\definecolor{accent}{rgb}{<<.Theme.Accent.LaTeX>>}
\definecolor{lightgray}{rgb}{0.95, 0.95, 0.95}
\definecolor{darkgray}{rgb}{0.3, 0.3, 0.3}

% Title styling
\title{
    {\color{primary}\Huge\bfseries Travel Itinerary}\\
    {\color{secondary}\Large <<.Destination>> Adventure}
}
\date{}
\author{}

% Header and footer
\pagestyle{fancy}
\fancyhf{}
\fancyhead[L]{\color{primary}\textbf{Bagpack Travel Itinerary}}
\fancyhead[R]{\color{secondary}<<.Destination>>}
\fancyfoot[C]{\color{darkgray}\thepage}
\renewcommand{\headrulewidth}{2pt}
\renewcommand{\headrule}{\color{primary}\hrule height \headrulewidth}

% Section styling based on theme
\usepackage{titlesec}
<<.TitleRule>>

\titleformat{\subsection}
  {\normalfont\large\bfseries\color{secondary}}
  {\thesubsection}{1em}{}
\titleformat{\subsubsection}
  {\normalfont\normalsize\bfseries\color{accent}}
  {\thesubsubsection}{1em}{}

% Custom info box
\newtcolorbox{infobox}{
    colback=lightgray,
    colframe=primary,
    boxrule=3pt,
    arc=8pt,
    left=15pt,
    right=15pt,
    top=15pt,
    bottom=15pt
}

\begin{document}

\maketitle
\thispagestyle{fancy}

% Trip Overview Box
\begin{infobox}
\begin{center}
\textbf{\Large \color{primary} Trip Overview}
\end{center}
\vspace{0.5em}

\noindent\textbf{\color{primary}Destination:} \color{darkgray}<<.Destination>>\\
\textbf{\color{secondary}Duration:} \color{darkgray}<<.Days>> <<.DayWord>> (<<.DateRange>>)\\
\textbf{\color{accent}Travelers:} \color{darkgray}<<.People>> <<.PeopleWord>>\\
\textbf{\color{primary}Budget:} \color{darkgray}<<.Budget>>\\
\textbf{\color{secondary}Generated:} \color{darkgray}<<.Generated>>
\end{infobox}

\vspace{1em}
<<.MapSection>>
% Main Content
<<.Content>>

\vspace{2em}

% Footer section
\begin{center}
\color{darkgray}
\rule{0.8\textwidth}{0.5pt}\\
\vspace{0.5em}
\textit{` + generatedByLine + `}\\
\textit{Template: \color{primary}<<.Theme.Name>>}\\
\textit{Have a wonderful journey!}
\end{center}

\end{document}
`))

const mapSection = `
\section{Route Map}
\begin{center}
\includegraphics[width=0.8\textwidth]{map.png}
\end{center}
\vspace{1em}
`

// titleRule returns the per-theme \titleformat block for top-level sections.
func titleRule(style HeaderStyle) string {
	switch style {
	case HeaderVintage:
		return `\titleformat{\section}
  {\normalfont\Large\bfseries\color{primary}}
  {\thesection}{1em}{}
  [\color{secondary}\rule{\textwidth}{2pt}]`
	case HeaderMinimalist:
		return `\titleformat{\section}
  {\normalfont\Large\bfseries\color{primary}}
  {}{0em}{}
  [\vspace{0.2em}\color{primary}\rule{\textwidth}{0.5pt}\vspace{0.3em}]`
	default:
		return `\titleformat{\section}
  {\normalfont\Large\bfseries\color{primary}}
  {\thesection}{1em}{}
  [\color{primary}\titlerule]`
	}
}

// BuildLaTeXDocument assembles a complete, self-contained LaTeX source for
// the given theme. The map section is inserted between the trip overview
// and the main content only when a map image will be available.
func BuildLaTeXDocument(meta Metadata, theme Theme, content string, hasMap bool, now time.Time) (string, error) {
	data := latexData{
		Metadata:   meta,
		Theme:      theme,
		Content:    content,
		Generated:  now.Format(timestampLayout),
		DayWord:    pluralize(meta.Days, "day", "days"),
		PeopleWord: "people",
		TitleRule:  titleRule(theme.HeaderStyle),
	}
	if meta.People == "1" {
		data.PeopleWord = "person"
	}
	if hasMap {
		data.MapSection = mapSection
	}

	var b strings.Builder
	if err := latexTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing document template: %w", err)
	}
	return b.String(), nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
