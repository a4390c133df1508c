// internal/database/ids.go
package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDString renders a native MongoDB identifier as text. ObjectIDs become
// their 24-character hex form.
func IDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// nativeFilter turns a Filter into a bson filter, converting a text
// identifier back to an ObjectID when it is one.
func nativeFilter(filter Filter) bson.M {
	out := bson.M{}
	for k, v := range filter {
		if k == IDField {
			if s, ok := v.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					out[k] = oid
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}

// fromNative converts a decoded bson document into a Document with a text
// identifier and plain Go maps and slices for nested values.
func fromNative(m bson.M) Document {
	doc := make(Document, len(m))
	for k, v := range m {
		if k == IDField {
			doc[k] = IDString(v)
			continue
		}
		doc[k] = plainValue(v)
	}
	return doc
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.M:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	case primitive.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
