package builder

import (
	"fmt"
	"sync"

	"github.com/Shopify/go-lua"

	"playparse/play"
)

// TransformFn is the Lua global a play script must define. It receives the
// play's single non-NULL segment as a table keyed by attribute name and
// returns the play type, or nil for NA.
const TransformFn = "transform"

var scriptKeys = append(append([]string{}, play.Attributes...), "safety")

// ScriptPlayMaker delegates the choice of play type to a Lua script.
type ScriptPlayMaker struct {
	mu       sync.Mutex
	luaState *lua.State
}

func NewScriptPlayMaker(file string) (*ScriptPlayMaker, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)
	if err := lua.DoFile(l, file); err != nil {
		return nil, fmt.Errorf("loading play script %v: %w", file, err)
	}
	return newScriptPlayMaker(l)
}

// NewScriptPlayMakerString is NewScriptPlayMaker for a script held in memory.
func NewScriptPlayMakerString(script string) (*ScriptPlayMaker, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)
	if err := lua.DoString(l, script); err != nil {
		return nil, fmt.Errorf("loading play script: %w", err)
	}
	return newScriptPlayMaker(l)
}

func newScriptPlayMaker(l *lua.State) (*ScriptPlayMaker, error) {
	l.Global(TransformFn)
	defined := l.IsFunction(-1)
	l.Pop(1)
	if !defined {
		return nil, fmt.Errorf("play script does not define function %v", TransformFn)
	}
	return &ScriptPlayMaker{luaState: l}, nil
}

func (s *ScriptPlayMaker) pushValue(v any) {
	l := s.luaState
	switch val := v.(type) {
	case bool:
		l.PushBoolean(val)
	case int:
		l.PushInteger(val)
	case string:
		l.PushString(val)
	case play.Yardline:
		l.NewTable()
		if !val.Absolute() {
			l.PushString(val.Team)
			l.SetField(-2, "team")
		}
		l.PushInteger(val.Number)
		l.SetField(-2, "number")
	default:
		l.PushString(play.FormatValue(v))
	}
}

func (s *ScriptPlayMaker) pushSegment(seg *play.Segment) {
	s.luaState.NewTable()
	for _, key := range scriptKeys {
		v, ok := seg.Get(key)
		if !ok {
			continue
		}
		s.pushValue(v)
		s.luaState.SetField(-2, key)
	}
}

// classify runs the script on seg.
func (s *ScriptPlayMaker) classify(seg *play.Segment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.luaState
	l.Global(TransformFn)
	s.pushSegment(seg)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		l.Pop(1)
		return "", fmt.Errorf("%v: %w", TransformFn, err)
	}
	// empty stack
	defer l.Pop(1)

	if l.IsNil(-1) {
		return NA, nil
	}
	kind, ok := l.ToString(-1)
	if !ok {
		return "", fmt.Errorf("%v returned %v, expected a string or nil", TransformFn, lua.TypeNameOf(l, -1))
	}
	return kind, nil
}

func (s *ScriptPlayMaker) Transform(t Teams, p *Play, desc *play.Description) error {
	p.Type = NA
	p.EndZoneResult = NA
	seg, ok := soleSegment(desc)
	if !ok || p.StartYardline < 0 {
		return nil
	}
	if seg.EndZoneResult != nil {
		p.EndZoneResult = *seg.EndZoneResult
	}

	kind, err := s.classify(seg)
	if err != nil {
		return err
	}
	if kind == NA {
		return nil
	}
	if err := endYards(t, p, seg); err != nil {
		return err
	}
	p.Type = kind
	return nil
}
