package persons

import (
	"github.com/pkg/errors"

	"dossier/record"
)

// callText invokes a method expected to answer text.
func callText(r *record.Record, name string, args ...record.Value) (string, error) {
	v, err := r.Call(name, args...)
	if err != nil {
		return "", err
	}
	s, ok := record.AsText(v)
	if !ok {
		return "", errors.Errorf("%s: expected a text result", name)
	}
	return s, nil
}

// callNumber invokes a method expected to answer an integer.
func callNumber(r *record.Record, name string, args ...record.Value) (int64, error) {
	v, err := r.Call(name, args...)
	if err != nil {
		return 0, err
	}
	n, ok := record.AsNumber(v)
	if !ok {
		return 0, errors.Errorf("%s: expected a number result", name)
	}
	return n, nil
}

// callSet invokes a setter, discarding the returned receiver.
func callSet(r *record.Record, name string, v record.Value) error {
	_, err := r.Call(name, v)
	return err
}
