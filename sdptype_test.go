package sdpatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSDPType(t *testing.T) {
	testCases := []struct {
		sdpTypeString   string
		expectedSDPType SDPType
	}{
		{unknownStr, SDPType(Unknown)},
		{"offer", SDPTypeOffer},
		{"pranswer", SDPTypePranswer},
		{"answer", SDPTypeAnswer},
		{"rollback", SDPTypeRollback},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedSDPType,
			newSDPType(testCase.sdpTypeString),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestSDPType_String(t *testing.T) {
	testCases := []struct {
		sdpType        SDPType
		expectedString string
	}{
		{SDPType(Unknown), unknownStr},
		{SDPTypeOffer, "offer"},
		{SDPTypePranswer, "pranswer"},
		{SDPTypeAnswer, "answer"},
		{SDPTypeRollback, "rollback"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.sdpType.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestSDPType_JSON(t *testing.T) {
	testCases := []struct {
		sdpType            SDPType
		jsonRepresentation []byte
	}{
		{SDPTypeOffer, []byte("\"offer\"")},
		{SDPTypePranswer, []byte("\"pranswer\"")},
		{SDPTypeAnswer, []byte("\"answer\"")},
		{SDPTypeRollback, []byte("\"rollback\"")},
	}

	for i, testCase := range testCases {
		m, err := json.Marshal(testCase.sdpType)
		assert.NoError(t, err)
		assert.Equal(t,
			testCase.jsonRepresentation,
			m,
			"Marshal testCase: %d %v", i, testCase,
		)

		var s SDPType
		err = json.Unmarshal(testCase.jsonRepresentation, &s)
		assert.NoError(t, err)
		assert.Equal(t,
			testCase.sdpType,
			s,
			"Unmarshal testCase: %d %v", i, testCase,
		)
	}

	{
		s := SDPType(1000)
		err := json.Unmarshal([]byte("\"invalid\""), &s)
		assert.Error(t, err)
		assert.Equal(t, SDPType(1000), s)
		err = json.Unmarshal([]byte("\"invalid"), &s)
		assert.Error(t, err)
		assert.Equal(t, SDPType(1000), s)
	}
}
