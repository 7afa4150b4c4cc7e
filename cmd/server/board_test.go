package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
)

type BoardCommandTestSuite struct {
	suite.Suite
	dir    string
	layout string
}

func TestBoardCommandSuite(t *testing.T) {
	suite.Run(t, new(BoardCommandTestSuite))
}

func (s *BoardCommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	// tile 0 is wood on 6 and is the only tile next to settlement 0
	layout := catan.Layout{
		{Resource: "wood", Chit: 6},
		{Resource: "brick", Chit: 6},
		{Resource: "sheep", Chit: 11},
		{Resource: "wheat", Chit: 8},
		{Resource: "ore", Chit: 5},
		{Resource: "wood", Chit: 10},
		{Resource: "sheep", Chit: 3},
		{Resource: "wheat", Chit: 9},
		{Resource: "desert", Chit: 0},
		{Resource: "brick", Chit: 4},
		{Resource: "ore", Chit: 8},
		{Resource: "wood", Chit: 5},
		{Resource: "sheep", Chit: 2},
		{Resource: "wheat", Chit: 9},
		{Resource: "brick", Chit: 10},
		{Resource: "ore", Chit: 12},
		{Resource: "wood", Chit: 11},
		{Resource: "sheep", Chit: 3},
		{Resource: "wheat", Chit: 4},
	}
	raw, err := yaml.Marshal(layout)
	s.Require().NoError(err)

	s.layout = filepath.Join(s.dir, "board.yaml")
	s.Require().NoError(os.WriteFile(s.layout, raw, 0o644))
}

func (s *BoardCommandTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func (s *BoardCommandTestSuite) TestGenerateToFile() {
	path := filepath.Join(s.dir, "generated.json")

	out, err := s.run("board", "generate", "--seed", "4", "--out", path)
	s.Require().NoError(err)
	s.Contains(out, "Layout written to "+path)

	got, err := readLayout(path)
	s.Require().NoError(err)

	want, err := catan.GenerateLayout(catan.WithSeed(4))
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *BoardCommandTestSuite) TestOdds() {
	out, err := s.run("board", "odds", "--layout", s.layout, "--settlement", "0")
	s.Require().NoError(err)

	s.Contains(out, "Settlement 0 (tiles [0])")
	s.Contains(out, "Hit rate: 0.1389 (5/36)")
	s.Contains(out, "Expected yield: 0.2778 cards/turn")
}

func (s *BoardCommandTestSuite) TestRank() {
	out, err := s.run("board", "rank", "--layout", s.layout, "--limit", "3", "--by", "hit-rate")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 4, "header plus three settlements")
	s.True(strings.HasPrefix(lines[0], "RANK"))
}

func (s *BoardCommandTestSuite) TestSimulate() {
	out, err := s.run("board", "simulate", "--layout", s.layout, "--settlement", "12", "--turns", "100", "--seed", "1")
	s.Require().NoError(err)
	s.Contains(out, "Settlement 12 over 100 turns")
	s.Contains(out, "exact")
}

func (s *BoardCommandTestSuite) TestInvalidLayoutFile() {
	bad := filepath.Join(s.dir, "bad.yaml")
	s.Require().NoError(os.WriteFile(bad, []byte("- {resource: wood, chit: 7}\n"), 0o644))

	_, err := s.run("board", "odds", "--layout", bad)
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid layout")
}
