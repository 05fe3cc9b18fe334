package app

import (
	"sort"
	"strings"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/validate"
)

// CreateMemo adds a memo. Content is required; a blank title gets the
// "Memo {N}" default.
func (s *State) CreateMemo(title, content string) (*model.Memo, error) {
	content = strings.TrimSpace(content)
	if err := validate.Text("content", content); err != nil {
		return nil, err
	}
	memo := model.NewMemo(strings.TrimSpace(title), content, len(s.Memos), s.now())
	s.Memos = append(s.Memos, memo)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return memo, nil
}

// DeleteMemo removes a memo.
func (s *State) DeleteMemo(id int64) error {
	for i, m := range s.Memos {
		if m.ID == id {
			s.Memos = append(append([]*model.Memo{}, s.Memos[:i]...), s.Memos[i+1:]...)
			return s.persist()
		}
	}
	return errors.ErrNotFound
}

// ClearMemos removes every memo, all-or-nothing.
func (s *State) ClearMemos() error {
	prev := s.Memos
	s.Memos = []*model.Memo{}
	if err := s.persist(); err != nil {
		s.Memos = prev
		return err
	}
	return nil
}

// FindMemo returns the memo with the given id, or nil.
func (s *State) FindMemo(id int64) *model.Memo {
	for _, m := range s.Memos {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// MemosCreatedOn returns memos created on the given date.
func (s *State) MemosCreatedOn(dateKey string) []*model.Memo {
	var matched []*model.Memo
	for _, m := range s.Memos {
		if dates.Key(m.CreatedAt) == dateKey {
			matched = append(matched, m)
		}
	}
	return matched
}

// SearchMemos returns memos whose title or content contains term,
// case-insensitively.
func (s *State) SearchMemos(term string) []*model.Memo {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.SortedMemos()
	}
	var matched []*model.Memo
	for _, m := range s.SortedMemos() {
		if strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Content), term) {
			matched = append(matched, m)
		}
	}
	return matched
}

// SortedMemos returns memos newest-first.
func (s *State) SortedMemos() []*model.Memo {
	sorted := append([]*model.Memo{}, s.Memos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// MemoEditSession is the Editing half of the memo editor's two-phase
// protocol. Opening the editor snapshots the pre-edit title and content;
// drafts accumulate in the session and touch the memo only on commit.
// Closing while dirty requires a discard confirmation, after which the
// drafts revert to the snapshot.
type MemoEditSession struct {
	memo         *model.Memo
	snapTitle    string
	snapContent  string
	DraftTitle   string
	DraftContent string
}

// BeginMemoEdit opens an edit session for a memo.
func (s *State) BeginMemoEdit(id int64) (*MemoEditSession, error) {
	memo := s.FindMemo(id)
	if memo == nil {
		return nil, errors.ErrNotFound
	}
	return &MemoEditSession{
		memo:         memo,
		snapTitle:    memo.Title,
		snapContent:  memo.Content,
		DraftTitle:   memo.Title,
		DraftContent: memo.Content,
	}, nil
}

// Memo returns the memo under edit.
func (sess *MemoEditSession) Memo() *model.Memo {
	return sess.memo
}

// Dirty reports whether the drafts differ from the pre-edit snapshot.
func (sess *MemoEditSession) Dirty() bool {
	return sess.DraftTitle != sess.snapTitle || sess.DraftContent != sess.snapContent
}

// Revert restores the drafts from the pre-edit snapshot.
func (sess *MemoEditSession) Revert() {
	sess.DraftTitle = sess.snapTitle
	sess.DraftContent = sess.snapContent
}

// CommitMemoEdit writes the session's drafts through to the memo and stamps
// the edit time. A blank draft title falls back to the previous title.
func (s *State) CommitMemoEdit(sess *MemoEditSession) error {
	title := strings.TrimSpace(sess.DraftTitle)
	if title == "" {
		title = sess.snapTitle
	}
	sess.memo.Title = title
	sess.memo.Content = strings.TrimSpace(sess.DraftContent)
	sess.memo.EditedAt = s.now()
	return s.persist()
}
