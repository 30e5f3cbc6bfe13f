package bplustree

import (
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
)

// MockIntComparator is a hand-written stand-in for what mockgen would
// generate for Comparator[int] — mockgen does not support generic
// interfaces directly, so the mock targets a concrete instantiation the
// way a generated mock for this collaborator would.
type MockIntComparator struct {
	ctrl     *gomock.Controller
	recorder *MockIntComparatorMockRecorder
}

type MockIntComparatorMockRecorder struct {
	mock *MockIntComparator
}

func NewMockIntComparator(ctrl *gomock.Controller) *MockIntComparator {
	m := &MockIntComparator{ctrl: ctrl}
	m.recorder = &MockIntComparatorMockRecorder{m}
	return m
}

func (m *MockIntComparator) EXPECT() *MockIntComparatorMockRecorder {
	return m.recorder
}

func (m *MockIntComparator) Compare(a, b int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", a, b)
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockIntComparatorMockRecorder) Compare(a, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare",
		reflect.TypeOf((*MockIntComparator)(nil).Compare), a, b)
}

// TestTreeNeverComparesKeysDirectly asserts that every ordering decision
// the search/insert/delete engines make goes through the Comparator
// collaborator rather than a direct operator on K.
func TestTreeNeverComparesKeysDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmp := NewMockIntComparator(ctrl)
	cmp.EXPECT().Compare(gomock.Any(), gomock.Any()).
		DoAndReturn(func(a, b int) int { return a - b }).
		MinTimes(1)

	tree, err := NewWithComparator[int, string](3, cmp)
	if err != nil {
		t.Fatalf("NewWithComparator: %v", err)
	}

	for _, k := range []int{5, 1, 9, 3, 7, 2, 8, 4, 6} {
		tree.Insert(k, "v")
	}
	if _, ok := tree.Find(7); !ok {
		t.Fatalf("Find(7) should report present")
	}
	if !tree.Erase(7) {
		t.Fatalf("Erase(7) should report true")
	}
}

func TestNewWithComparatorRejectsNilComparator(t *testing.T) {
	if _, err := NewWithComparator[int, string](3, nil); err == nil {
		t.Fatalf("NewWithComparator with nil comparator should fail")
	}
}
