// Package content holds the structured text of the pitch deck.
//
// A Deck is pure data: ordered records per section, each carrying the color
// tag its cards are keyed by. The composer decides where things go and which
// theme colors a tag maps to. The default deck is embedded YAML; Load reads
// an override from disk.
package content

import "github.com/VantageDataChat/pitchdeck/theme"

// Deck is the full content of the ten-slide deck.
type Deck struct {
	Meta          Meta          `yaml:"meta"`
	Title         TitleSlide    `yaml:"title"`
	Problem       Problem       `yaml:"problem"`
	Features      Features      `yaml:"features"`
	TechStack     TechStack     `yaml:"tech_stack"`
	Architecture  Architecture  `yaml:"architecture"`
	Bridge        Bridge        `yaml:"bridge"`
	Notifications Notifications `yaml:"notifications"`
	Models        Models        `yaml:"models"`
	Regression    Regression    `yaml:"regression"`
	Closing       Closing       `yaml:"closing"`
}

// Meta describes the output files and document properties.
type Meta struct {
	// FileBase is the output file name without theme suffix or extension.
	FileBase string `yaml:"file_base" validate:"required,excludesall=/\\"`
	Title    string `yaml:"title" validate:"required"`
	Subject  string `yaml:"subject"`
	Creator  string `yaml:"creator"`
	Company  string `yaml:"company"`
}

// TitleSlide is the opening hero slide.
type TitleSlide struct {
	Heading     string `yaml:"heading" validate:"required"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	FooterLeft  string `yaml:"footer_left"`
	FooterRight string `yaml:"footer_right"`
}

// BulletPanel is a headed card holding a bullet list.
type BulletPanel struct {
	Heading string    `yaml:"heading" validate:"required"`
	Tag     theme.Tag `yaml:"tag" validate:"required,colortag"`
	Items   []string  `yaml:"items" validate:"min=1,max=12"`
}

// Callout is a wide summary panel: a highlighted heading over plain lines.
type Callout struct {
	Heading string    `yaml:"heading" validate:"required"`
	Tag     theme.Tag `yaml:"tag" validate:"required,colortag"`
	Lines   []string  `yaml:"lines" validate:"max=4"`
}

// Problem contrasts the current method with the proposed one.
type Problem struct {
	Title    string      `yaml:"title" validate:"required"`
	Current  BulletPanel `yaml:"current"`
	Proposed BulletPanel `yaml:"proposed"`
}

// Feature is one card of the feature grid.
type Feature struct {
	Icon        string    `yaml:"icon"`
	Title       string    `yaml:"title" validate:"required"`
	Description string    `yaml:"description"`
	Tag         theme.Tag `yaml:"tag" validate:"required,colortag"`
}

// Features fills a four-column, two-row grid.
type Features struct {
	Title string    `yaml:"title" validate:"required"`
	Items []Feature `yaml:"items" validate:"min=1,max=8,dive"`
}

// TechItem is one technology entry of a stack column.
type TechItem struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

// TechColumn is one category of the technology stack.
type TechColumn struct {
	Category string     `yaml:"category" validate:"required"`
	Tag      theme.Tag  `yaml:"tag" validate:"required,colortag"`
	Items    []TechItem `yaml:"items" validate:"min=1,max=6,dive"`
}

// TechStack is laid out as up to three side-by-side columns.
type TechStack struct {
	Title   string       `yaml:"title" validate:"required"`
	Columns []TechColumn `yaml:"columns" validate:"min=1,max=3,dive"`
}

// Lane is a headed column of the architecture diagram.
type Lane struct {
	Heading string    `yaml:"heading" validate:"required"`
	Tag     theme.Tag `yaml:"tag" validate:"required,colortag"`
}

// Client is a browser session card.
type Client struct {
	Name     string `yaml:"name" validate:"required"`
	ClientID string `yaml:"client_id"`
}

// Component is a titled entry with a description.
type Component struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Device is a target device card.
type Device struct {
	Name    string `yaml:"name" validate:"required"`
	Command string `yaml:"command"`
	Status  string `yaml:"status"`
}

// Architecture shows clients feeding a server that drives devices.
type Architecture struct {
	Title      string      `yaml:"title" validate:"required"`
	ClientLane Lane        `yaml:"client_lane"`
	Clients    []Client    `yaml:"clients" validate:"min=1,max=3,dive"`
	ServerLane Lane        `yaml:"server_lane"`
	Server     []Component `yaml:"server" validate:"min=1,max=4,dive"`
	DeviceLane Lane        `yaml:"device_lane"`
	Devices    []Device    `yaml:"devices" validate:"min=1,max=2,dive"`
	Insight    Callout     `yaml:"insight"`
}

// BridgeStages is the number of cards in every bridge row.
const BridgeStages = 4

// BridgeRow is one user's path through the log bridge. Stages[0] is the
// user's own viewer; the rest are the hops to the device.
type BridgeRow struct {
	User     string               `yaml:"user" validate:"required"`
	Stages   [BridgeStages]string `yaml:"stages" validate:"dive,required"`
	ClientID string               `yaml:"client_id"`
	Tag      theme.Tag            `yaml:"tag" validate:"required,colortag"`
}

// Bridge is the per-user log forwarding pipeline.
type Bridge struct {
	Title   string      `yaml:"title" validate:"required"`
	Headers []string    `yaml:"headers" validate:"max=5"`
	Rows    []BridgeRow `yaml:"rows" validate:"min=1,max=3,dive"`
	Insight Callout     `yaml:"insight"`
	Cleanup Callout     `yaml:"cleanup"`
}

// Step is a labelled stage of a flow.
type Step struct {
	Label       string    `yaml:"label" validate:"required"`
	Description string    `yaml:"description"`
	Tag         theme.Tag `yaml:"tag" validate:"required,colortag"`
}

// Kind is a tagged card with a title and description.
type Kind struct {
	Title       string    `yaml:"title" validate:"required"`
	Description string    `yaml:"description"`
	Tag         theme.Tag `yaml:"tag" validate:"required,colortag"`
}

// Notifications explains the broadcast flow and lists notification kinds.
type Notifications struct {
	Title        string `yaml:"title" validate:"required"`
	Lead         string `yaml:"lead"`
	FlowHeading  string `yaml:"flow_heading" validate:"required"`
	Steps        []Step `yaml:"steps" validate:"min=1,max=4,dive"`
	KindsHeading string `yaml:"kinds_heading" validate:"required"`
	Kinds        []Kind `yaml:"kinds" validate:"min=1,max=3,dive"`
}

// Models fills a three-column, two-row grid plus a detection panel.
type Models struct {
	Title     string  `yaml:"title" validate:"required"`
	Items     []Kind  `yaml:"items" validate:"min=1,max=6,dive"`
	Detection Callout `yaml:"detection"`
}

// Checklist is a headed card with an intro line, tagged items and an
// optional footnote.
type Checklist struct {
	Heading  string    `yaml:"heading" validate:"required"`
	Intro    string    `yaml:"intro"`
	Tag      theme.Tag `yaml:"tag" validate:"required,colortag"`
	Items    []string  `yaml:"items" validate:"max=6"`
	Footnote string    `yaml:"footnote"`
}

// Regression lists engine features next to export and validation details.
type Regression struct {
	Title      string      `yaml:"title" validate:"required"`
	Features   BulletPanel `yaml:"features"`
	Export     Checklist   `yaml:"export"`
	Validation Checklist   `yaml:"validation"`
}

// Stat is one row of the impact table.
type Stat struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Impact is the before/after table on the closing slide.
type Impact struct {
	Heading string    `yaml:"heading" validate:"required"`
	Tag     theme.Tag `yaml:"tag" validate:"required,colortag"`
	Stats   []Stat    `yaml:"stats" validate:"min=1,max=5,dive"`
}

// ThankYou is the closing hero card.
type ThankYou struct {
	Heading     string   `yaml:"heading" validate:"required"`
	Subheading  string   `yaml:"subheading"`
	CreditLabel string   `yaml:"credit_label"`
	Author      string   `yaml:"author"`
	Affiliation string   `yaml:"affiliation"`
	Contacts    []string `yaml:"contacts" validate:"max=3"`
}

// Closing covers deployment, impact and the thank-you card.
type Closing struct {
	Title    string      `yaml:"title" validate:"required"`
	Deploy   BulletPanel `yaml:"deploy"`
	Impact   Impact      `yaml:"impact"`
	ThankYou ThankYou    `yaml:"thank_you"`
}
