package repository

import (
	"net/url"

	"adminconsole/pkg/response"
)

// resourcePath joins a collection path with an escaped identifier and optional action.
func resourcePath(collection, id string, action ...string) string {
	p := collection + "/" + url.PathEscape(id)
	for _, a := range action {
		p += "/" + a
	}
	return p
}

// decodeList reads a collection returned either bare or under key.
func decodeList[T any](body []byte, key string) ([]T, int, error) {
	raw := response.Items(body, key)
	items := []T{}
	if err := response.Decode(raw, &items); err != nil {
		return nil, 0, err
	}
	return items, response.Total(body, len(items)), nil
}

// decodeOne reads an entity returned either bare or under key.
func decodeOne[T any](body []byte, key string) (*T, error) {
	var v T
	if err := response.Decode(response.Field(body, key), &v); err != nil {
		return nil, err
	}
	return &v, nil
}
