/*
 * cif.go, part of monLint.
 *
 *
 * Copyright 2026 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * monLint is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

// Package cif reads the subset of the CIF/mmCIF format used by chemical
// dictionaries: data blocks holding scalar tag-value pairs and loop_
// tables. It is not a general STAR parser; save frames and dictionary
// features not present in component files are ignored.
package cif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Block is one data_ block of a CIF file. Scalar values are looked up
// by tag, loop tables by the set of column tags they must carry.
type Block struct {
	Name  string
	items map[string]string
	loops []*loop
}

type loop struct {
	tags []string //lower-cased, in file order
	rows [][]string
}

// Value returns the scalar value for the given tag (case-insensitive)
// and whether the tag is present in the block.
func (b *Block) Value(tag string) (string, bool) {
	v, ok := b.items[strings.ToLower(tag)]
	return v, ok
}

// Table is a view of one loop restricted to the requested columns, in
// the order they were requested.
type Table struct {
	l    *loop
	cols []int
}

// Table finds the loop that carries all the tags prefix+cols and
// returns a view of it. It returns nil if no loop in the block has all
// the requested columns, which the callers treat as "no such table".
func (b *Block) Table(prefix string, cols ...string) *Table {
	want := make([]string, len(cols))
	for i, c := range cols {
		want[i] = strings.ToLower(prefix + c)
	}
	for _, l := range b.loops {
		idx := make([]int, len(want))
		found := true
		for i, w := range want {
			idx[i] = -1
			for j, t := range l.tags {
				if t == w {
					idx[i] = j
					break
				}
			}
			if idx[i] < 0 {
				found = false
				break
			}
		}
		if found {
			return &Table{l: l, cols: idx}
		}
	}
	return nil
}

// Len returns the number of rows in the table. A nil table has 0 rows,
// so absent tables can be ranged over without checking.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.l.rows)
}

// Get returns the value at the given row, in the column that was
// requested at position col when the Table was built.
func (t *Table) Get(row, col int) string {
	return t.l.rows[row][t.cols[col]]
}

type token struct {
	text   string
	quoted bool //quoted tokens can never be keywords or tags
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// splitLine cuts one line into tokens, honoring single/double quotes
// and the # comment. A closing quote only counts if followed by
// whitespace or the end of the line, as the format demands.
func splitLine(line string) []token {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		if isSpace(c) {
			i++
			continue
		}
		if c == '#' {
			break
		}
		if c == '\'' || c == '"' {
			j := i + 1
			for j < len(line) {
				if line[j] == c && (j+1 == len(line) || isSpace(line[j+1])) {
					break
				}
				j++
			}
			//an unterminated quote runs to the end of the line
			toks = append(toks, token{line[i+1 : j], true})
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && !isSpace(line[j]) {
			j++
		}
		toks = append(toks, token{line[i:j], false})
		i = j
	}
	return toks
}

type parser struct {
	fname   string
	lineno  int
	blocks  []*Block
	cur     *Block
	curloop *loop
	pending []string //values of the loop row being filled
	header  bool     //still reading loop_ tags
	wanttag string   //scalar tag waiting for its value
}

func (p *parser) errf(format string, a ...interface{}) error {
	return Error{fmt.Sprintf(format, a...), p.fname, p.lineno, nil, true}
}

func (p *parser) closeLoop() error {
	if p.curloop == nil {
		return nil
	}
	if len(p.pending) != 0 {
		return p.errf("loop row with %d of %d values", len(p.pending), len(p.curloop.tags))
	}
	if len(p.curloop.tags) == 0 {
		return p.errf("loop_ without tags")
	}
	p.cur.loops = append(p.cur.loops, p.curloop)
	p.curloop = nil
	return nil
}

func (p *parser) feed(tok token) error {
	lt := strings.ToLower(tok.text)
	switch {
	case !tok.quoted && strings.HasPrefix(lt, "data_"):
		if err := p.closeLoop(); err != nil {
			return err
		}
		if p.wanttag != "" {
			return p.errf("tag %s has no value", p.wanttag)
		}
		p.cur = &Block{Name: tok.text[len("data_"):], items: make(map[string]string)}
		p.blocks = append(p.blocks, p.cur)
	case !tok.quoted && (lt == "global_" || strings.HasPrefix(lt, "save_")):
		//not used by component dictionaries, skipped if ever present
		return p.closeLoop()
	case !tok.quoted && lt == "loop_":
		if p.cur == nil {
			return p.errf("loop_ outside a data block")
		}
		if err := p.closeLoop(); err != nil {
			return err
		}
		p.curloop = new(loop)
		p.header = true
	case !tok.quoted && strings.HasPrefix(tok.text, "_"):
		if p.cur == nil {
			return p.errf("tag %s outside a data block", tok.text)
		}
		if p.curloop != nil && p.header {
			p.curloop.tags = append(p.curloop.tags, lt)
			return nil
		}
		//a tag after loop values ends the loop
		if err := p.closeLoop(); err != nil {
			return err
		}
		if p.wanttag != "" {
			return p.errf("tag %s has no value", p.wanttag)
		}
		p.wanttag = lt
	default:
		if p.wanttag != "" {
			p.cur.items[p.wanttag] = tok.text
			p.wanttag = ""
			return nil
		}
		if p.curloop != nil {
			p.header = false
			p.pending = append(p.pending, tok.text)
			if len(p.pending) == len(p.curloop.tags) {
				p.curloop.rows = append(p.curloop.rows, p.pending)
				p.pending = nil
			}
			return nil
		}
		return p.errf("stray value %q", tok.text)
	}
	return nil
}

// readTextField consumes a ;-delimited multi-line value. The first
// line (already read) starts with the semicolon; lines are accumulated
// until one starting with ';', whose remainder is returned for normal
// tokenization.
func (p *parser) readTextField(h *bufio.Reader, first string) (string, string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(first[1:], "\r\n"))
	for {
		line, err := h.ReadString('\n')
		if line != "" {
			p.lineno++
		}
		if strings.HasPrefix(line, ";") {
			return b.String(), line[1:], nil
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(line, "\r\n"))
		if err != nil {
			return "", "", p.errf("unterminated text field")
		}
	}
}

func read(rd io.Reader, fname string) ([]*Block, error) {
	h := bufio.NewReader(rd)
	p := &parser{fname: fname}
	for {
		line, rerr := h.ReadString('\n')
		if line != "" {
			p.lineno++
			if strings.HasPrefix(line, ";") {
				text, rest, err := p.readTextField(h, line)
				if err != nil {
					return nil, err
				}
				if err := p.feed(token{text, true}); err != nil {
					return nil, err
				}
				line = rest
			}
			for _, t := range splitLine(line) {
				if err := p.feed(t); err != nil {
					return nil, err
				}
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return nil, Error{rerr.Error(), fname, p.lineno, nil, true}
		}
	}
	if err := p.closeLoop(); err != nil {
		return nil, err
	}
	if p.wanttag != "" {
		return nil, p.errf("tag %s has no value", p.wanttag)
	}
	return p.blocks, nil
}

// Read parses CIF data from r and returns its data blocks, in file
// order.
func Read(r io.Reader) ([]*Block, error) {
	return read(r, "")
}
