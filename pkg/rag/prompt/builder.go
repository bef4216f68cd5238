package prompt

import (
	"fmt"
	"strings"
)

// IndoorMapDescription is the vision prompt used when indexing a map image.
const IndoorMapDescription = "Describe this indoor map in detail. List all rooms, landmarks, and explain how to navigate between them. Be specific about locations."

// ContextBlock is one retrieved chunk presented to the model.
type ContextBlock struct {
	Text string
}

// GroundedAnswerBuilder builds the retrieval-grounded answering prompt:
// numbered context blocks, the literal question, and instructions that
// pin the model to the provided context.
type GroundedAnswerBuilder struct {
	question string
	blocks   []ContextBlock
}

func NewGroundedAnswerBuilder(question string, blocks []ContextBlock) *GroundedAnswerBuilder {
	return &GroundedAnswerBuilder{
		question: question,
		blocks:   blocks,
	}
}

func (b *GroundedAnswerBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("You are a helpful event assistant. Answer the question based ONLY on the provided context from event documents.\n\n")

	sb.WriteString("CONTEXT:\n")
	for i, block := range b.blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%d] %s", i+1, block.Text)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "QUESTION: %s\n\n", b.question)

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("- Answer concisely and accurately using only the provided context\n")
	sb.WriteString("- If the answer is not in the context, say \"I don't have that information in the event documents.\"\n")
	sb.WriteString("- Be friendly and helpful\n")
	sb.WriteString("- Keep answers under 200 words\n\n")
	sb.WriteString("ANSWER:")

	return sb.String()
}

// BuildClassification builds the prompt that decides whether an attendee
// message needs organizer attention. The model must answer in JSON.
func BuildClassification(message string) string {
	var sb strings.Builder

	sb.WriteString("Analyze this attendee message and determine if it requires organizer attention (flagging).\n\n")
	fmt.Fprintf(&sb, "MESSAGE: %q\n\n", message)

	sb.WriteString("Flag the message (should_flag=true) if it contains:\n")
	sb.WriteString("- Bug reports or technical issues\n")
	sb.WriteString("- Complaints or negative feedback\n")
	sb.WriteString("- Safety concerns or emergencies\n")
	sb.WriteString("- Payment/refund issues\n")
	sb.WriteString("- Requests that require human intervention\n")
	sb.WriteString("- Confusion that couldn't be answered by FAQs\n\n")

	sb.WriteString("Do NOT flag if:\n")
	sb.WriteString("- It's a simple FAQ question\n")
	sb.WriteString("- It's a thank you or positive feedback\n")
	sb.WriteString("- It can be easily answered by documentation\n\n")

	sb.WriteString("Respond in JSON format:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"should_flag\": true/false,\n")
	sb.WriteString("  \"confidence\": 0.0-1.0,\n")
	sb.WriteString("  \"reason\": \"brief explanation\"\n")
	sb.WriteString("}")

	return sb.String()
}
