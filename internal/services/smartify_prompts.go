package services

// Prompt + strict JSON schema per extraction category. The schemas follow
// the OpenAI strict structured-output rules: every object lists
// additionalProperties=false and requires every declared property, so
// "absent" is expressed as empty string / empty array and filtered during
// normalization.

type promptName string

const (
	promptActionItems    promptName = "action_items_extract"
	promptInvestorUpdate promptName = "investor_update_extract"
	promptProgressLog    promptName = "progress_log_extract"
	promptProductIdeas   promptName = "product_ideas_extract"
	promptBrainDump      promptName = "brain_dump_extract"
)

// ---------- shared fragments ----------

func enumSchema(values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}

func stringArraySchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

// ---------- action items ----------

const actionItemsSystemPrompt = `You extract action items from a founder's dictated voice note transcript.

Return a JSON object with a single key "action_items": an array of tasks
explicitly or implicitly committed to in the transcript. For each task:
- "task": a short imperative description of what has to be done.
- "assignee": the responsible person. Infer from "@Name", "Name needs to ...",
  or first-person phrasing ("I need to" means the speaker; use "me"). Use ""
  when nobody is named.
- "deadline": a due date as YYYY-MM-DD when one is stated or clearly implied
  ("by Friday" means the upcoming Friday). Use "" when there is none. Never
  invent a date.
- "priority": "high" when the transcript says urgent, ASAP, critical,
  immediately, or top priority. "medium" for important, should, need to.
  "low" for maybe, consider, when possible, eventually. Default to "medium"
  when no cue matches.

If the transcript contains no action items, return {"action_items": []}.`

func actionItemsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"task":     map[string]any{"type": "string"},
						"assignee": map[string]any{"type": "string"},
						"deadline": map[string]any{"type": "string"},
						"priority": enumSchema("high", "medium", "low"),
					},
					"required":             []string{"task", "assignee", "deadline", "priority"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"action_items"},
		"additionalProperties": false,
	}
}

// ---------- investor update ----------

const investorUpdateSystemPrompt = `You draft an investor update from a founder's dictated voice note transcript.

Return a JSON object with a single key "update" containing exactly one draft:
- "wins": accomplishments and positive developments mentioned.
- "metrics": an object mapping metric names to the values stated (revenue,
  users, growth figures). Only include numbers actually mentioned.
- "challenges": problems, setbacks, or risks mentioned.
- "asks": things the founder wants from investors (intros, hires, advice).
- "subject": a concise email subject line for the update.
- "body": a multi-paragraph update email weaving the wins, metrics,
  challenges and asks into prose. Tone: professional, specific, concrete.

If the transcript has no investor-relevant content at all, return every
field empty ("" / [] / {}).`

func investorUpdateSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"update": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subject":    map[string]any{"type": "string"},
					"body":       map[string]any{"type": "string"},
					"wins":       stringArraySchema(),
					"metrics":    map[string]any{"type": "object", "additionalProperties": true},
					"challenges": stringArraySchema(),
					"asks":       stringArraySchema(),
				},
				"required":             []string{"subject", "body", "wins", "metrics", "challenges", "asks"},
				"additionalProperties": false,
			},
		},
		"required":             []string{"update"},
		"additionalProperties": false,
	}
}

// ---------- progress log ----------

const progressLogSystemPrompt = `You classify progress statements from a founder's dictated voice note transcript.

Return a JSON object with a single key "progress" containing exactly one record:
- "completed": work described in the past tense (shipped, finished,
  completed, done).
- "in_progress": work described as ongoing (working on, building, currently).
- "blocked": work that cannot proceed (stuck, waiting for, can't proceed).

Each entry is a short standalone phrase. A statement belongs to exactly one
bucket. If the transcript mentions no progress at all, return every bucket
empty.`

func progressLogSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"progress": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"completed":   stringArraySchema(),
					"in_progress": stringArraySchema(),
					"blocked":     stringArraySchema(),
				},
				"required":             []string{"completed", "in_progress", "blocked"},
				"additionalProperties": false,
			},
		},
		"required":             []string{"progress"},
		"additionalProperties": false,
	}
}

// ---------- product ideas ----------

const productIdeasSystemPrompt = `You extract product ideas from a founder's dictated voice note transcript.

Return a JSON object with a single key "ideas": an array of product ideas
mentioned. For each idea:
- "idea": a short description of the idea itself.
- "category": one of "feature", "improvement", "integration", "pivot",
  "experiment", "new_product".
- "priority": "high" for must have, critical, urgent, or explicit customer
  demand. "medium" for would be nice, should add, important. "low" for
  maybe, someday, nice to have. Default to "medium".
- "context": surrounding rationale from the transcript (who asked, why it
  matters). Use "" when there is none.

If the transcript contains no product ideas, return {"ideas": []}.`

func productIdeasSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ideas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"idea":     map[string]any{"type": "string"},
						"category": enumSchema("feature", "improvement", "integration", "pivot", "experiment", "new_product"),
						"priority": enumSchema("high", "medium", "low"),
						"context":  map[string]any{"type": "string"},
					},
					"required":             []string{"idea", "category", "priority", "context"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"ideas"},
		"additionalProperties": false,
	}
}

// ---------- brain dump ----------

const brainDumpSystemPrompt = `You categorize the remaining notable content of a founder's dictated voice note transcript.

Return a JSON object with a single key "items": an array of entries. For each:
- "content": the note itself, as a short standalone statement.
- "category": exactly one of:
  "meeting"  - recaps of conversations or meetings with people,
  "blocker"  - something preventing progress,
  "decision" - a decision that was made,
  "question" - an open question to resolve,
  "followup" - something to circle back on later.
  The categories are mutually exclusive; when an entry could fit two, pick
  the single most salient one.
- "participants": for "meeting" entries, the names of the people involved
  when the transcript names them. Empty array otherwise.

If nothing notable remains, return {"items": []}.`

func brainDumpSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"content":      map[string]any{"type": "string"},
						"category":     enumSchema("meeting", "blocker", "decision", "question", "followup"),
						"participants": stringArraySchema(),
					},
					"required":             []string{"content", "category", "participants"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"items"},
		"additionalProperties": false,
	}
}

func transcriptUserPrompt(transcript string) string {
	return "Transcript:\n\"\"\"\n" + transcript + "\n\"\"\""
}
