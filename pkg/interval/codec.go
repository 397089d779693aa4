package interval

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dball/intervals/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	binaryVersion = 1
	binarySize    = 1 + 3*8
)

// wire is the persisted form of an interval: its three defining values. The size is
// recomputed on decoding.
type wire struct {
	From int64 `json:"from" yaml:"from"`
	To   int64 `json:"to" yaml:"to"`
	Step int64 `json:"step" yaml:"step"`
}

func (iv Interval[T]) wire() wire {
	if iv.size == 0 {
		iv = empty[T]()
	}
	return wire{From: int64(iv.from), To: int64(iv.to), Step: int64(iv.step)}
}

func (iv *Interval[T]) decode(w wire) (err error) {
	from, to, step := T(w.From), T(w.To), T(w.Step)
	if int64(from) != w.From || int64(to) != w.To || int64(step) != w.Step {
		return types.NewError(types.ErrInvalidArgument, "interval.decode.overflow", "from", w.From, "to", w.To, "step", w.Step)
	}
	if from == 0 && to == -1 && step == 1 {
		*iv = empty[T]()
		return
	}
	decoded, err := build(from, to, step)
	if err != nil {
		return
	}
	*iv = decoded
	return
}

func (iv Interval[T]) MarshalBinary() ([]byte, error) {
	w := iv.wire()
	data := make([]byte, binarySize)
	data[0] = binaryVersion
	binary.BigEndian.PutUint64(data[1:], uint64(w.From))
	binary.BigEndian.PutUint64(data[9:], uint64(w.To))
	binary.BigEndian.PutUint64(data[17:], uint64(w.Step))
	return data, nil
}

func (iv *Interval[T]) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize || data[0] != binaryVersion {
		return types.NewError(types.ErrInvalidArgument, "interval.unmarshalBinary.format", "length", len(data))
	}
	return iv.decode(wire{
		From: int64(binary.BigEndian.Uint64(data[1:])),
		To:   int64(binary.BigEndian.Uint64(data[9:])),
		Step: int64(binary.BigEndian.Uint64(data[17:])),
	})
}

func (iv Interval[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.wire())
}

func (iv *Interval[T]) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return iv.decode(w)
}

func (iv Interval[T]) MarshalYAML() (interface{}, error) {
	return iv.wire(), nil
}

func (iv *Interval[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return iv.decode(w)
}
