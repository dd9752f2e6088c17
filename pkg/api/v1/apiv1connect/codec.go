package apiv1connect

import "encoding/json"

// Codec marshals messages with encoding/json. It is registered under the
// "json" name, replacing Connect's protobuf JSON codec, so the wire content
// type stays application/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
