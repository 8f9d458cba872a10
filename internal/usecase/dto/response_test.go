package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAck_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Ack{Message: "Area created successfully", IDKey: "area_id", ID: int64(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Area created successfully","area_id":1}`, string(data))

	data, err = json.Marshal(&Ack{Message: "Support contact created", IDKey: "id", ID: int64(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Support contact created","id":3}`, string(data))
}
