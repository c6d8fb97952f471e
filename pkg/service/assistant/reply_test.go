package assistant_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/service/assistant"
)

func TestParseReply(t *testing.T) {
	t.Run("envelope with actions", func(t *testing.T) {
		raw := `{"message": "Done!", "actions": [{"action": "add_note", "data": {"title": "Buy milk"}}]}`
		reply := assistant.ParseReply(raw)

		gt.Value(t, reply.Content).Equal("Done!")
		gt.Array(t, reply.Actions).Length(1)
		gt.Value(t, reply.Actions[0].Kind).Equal(types.ActionAddNote)
		gt.Value(t, reply.Actions[0].Data["title"]).Equal("Buy milk")
	})

	t.Run("none actions are filtered", func(t *testing.T) {
		raw := `{"message": "Hi there", "actions": [{"action": "none", "data": {}}]}`
		reply := assistant.ParseReply(raw)

		gt.Value(t, reply.Content).Equal("Hi there")
		gt.Array(t, reply.Actions).Length(0)
	})

	t.Run("bare single action object", func(t *testing.T) {
		raw := `{"action": "complete_note", "data": {"title_query": "milk"}}`
		reply := assistant.ParseReply(raw)

		gt.Array(t, reply.Actions).Length(1)
		gt.Value(t, reply.Actions[0].Kind).Equal(types.ActionCompleteNote)
	})

	t.Run("bare none object has no actions", func(t *testing.T) {
		raw := `{"action": "none", "data": {}, "message": "Just chatting"}`
		reply := assistant.ParseReply(raw)

		gt.Value(t, reply.Content).Equal("Just chatting")
		gt.Array(t, reply.Actions).Length(0)
	})

	t.Run("non-JSON reply degrades to plain text", func(t *testing.T) {
		raw := "Sorry, I did not understand that."
		reply := assistant.ParseReply(raw)

		gt.Value(t, reply.Content).Equal(raw)
		gt.Array(t, reply.Actions).Length(0)
	})

	t.Run("missing message falls back to raw JSON", func(t *testing.T) {
		raw := `{"actions": [{"action": "add_note", "data": {"title": "x"}}]}`
		reply := assistant.ParseReply(raw)

		gt.Value(t, reply.Content).Equal(raw)
		gt.Array(t, reply.Actions).Length(1)
	})

	t.Run("unknown kinds are kept for the dispatcher to ignore", func(t *testing.T) {
		raw := `{"message": "ok", "actions": [{"action": "send_rocket", "data": {}}]}`
		reply := assistant.ParseReply(raw)

		gt.Array(t, reply.Actions).Length(1)
		gt.Value(t, reply.Actions[0].Kind.IsValid()).Equal(false)
	})
}
