package model

import (
	json "github.com/goccy/go-json"
)

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func jsonMarshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
