package lukaz

import "encoding/json"

// Session is returned when a guest session is started.
type Session struct {
	SessionID string `json:"sessionId"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	type plain Session
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*s = Session(p)
	s.Raw = raw
	return nil
}

func (s Session) MarshalJSON() ([]byte, error) {
	type plain Session
	return encodeRaw(s.Raw, plain(s))
}

// User is the authenticated account, including its quota and usage.
type User struct {
	DisplayName  string   `json:"displayName"`
	Email        string   `json:"email"`
	PhotoURL     string   `json:"photoURL,omitempty"`
	Quota        Quota    `json:"quota"`
	SavedPrompts []string `json:"savedPrompts"`
	Usage        Quota    `json:"usage"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*u = User(p)
	u.Raw = raw
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return encodeRaw(u.Raw, plain(u))
}

// Quota counts prompts and boards, either allowed or consumed.
type Quota struct {
	Prompts int `json:"prompts"`
	Boards  int `json:"boards"`

	Raw json.RawMessage `json:"-"`
}

func (q *Quota) UnmarshalJSON(data []byte) error {
	type plain Quota
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*q = Quota(p)
	q.Raw = raw
	return nil
}

func (q Quota) MarshalJSON() ([]byte, error) {
	type plain Quota
	return encodeRaw(q.Raw, plain(q))
}

// Role levels used in Board.Roles. Higher levels include lower ones.
const (
	RoleViewer = 2
	RoleEditor = 4
	RoleOwner  = 5
)

// Board is a named scope holding documents, prompts and access roles.
type Board struct {
	ID          string             `json:"id"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description"`
	OwnerEmail  string             `json:"ownerEmail"`
	Documents   []Document         `json:"documents"`
	Options     BoardOptions       `json:"options"`
	Roles       map[string]int     `json:"roles"`
	Stats       map[string]float64 `json:"stats"`
	CreatedAt   Timestamp          `json:"createdAt"`
	UpdatedAt   Timestamp          `json:"updatedAt"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (b *Board) UnmarshalJSON(data []byte) error {
	type plain Board
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*b = Board(p)
	b.Raw = raw
	return nil
}

func (b Board) MarshalJSON() ([]byte, error) {
	type plain Board
	return encodeRaw(b.Raw, plain(b))
}

// Board option keys this client knows. Boards may carry others, which are
// kept as received.
const (
	OptionPrompt = "prompt"
	OptionDocs   = "docs"
	OptionFree   = "free"
	OptionPublic = "public"
	OptionUpload = "upload"
)

// BoolOptions lists the known options that take a boolean value.
var BoolOptions = []string{OptionPrompt, OptionDocs, OptionFree, OptionPublic, OptionUpload}

// IsBoolOption reports whether key is one of BoolOptions.
func IsBoolOption(key string) bool {
	for _, k := range BoolOptions {
		if k == key {
			return true
		}
	}
	return false
}

// BoardOptions are the feature flags of a board keyed by option name. Values
// are booleans for the known options; other options may hold enum strings.
type BoardOptions map[string]interface{}

// Bool returns the value of a boolean option. Unset and non-boolean values
// read as false.
func (o BoardOptions) Bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

// Clone returns a shallow copy of o.
func (o BoardOptions) Clone() BoardOptions {
	out := make(BoardOptions, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// withDefaults returns a copy of o with every known boolean option present.
func (o BoardOptions) withDefaults() BoardOptions {
	out := o.Clone()
	for _, k := range BoolOptions {
		if _, ok := out[k]; !ok {
			out[k] = false
		}
	}
	return out
}

// Document is a file attached to a board.
type Document struct {
	Name      string    `json:"name"`
	Extension string    `json:"extension"`
	URL       string    `json:"url"`
	Processed bool      `json:"processed"`
	CreatedAt Timestamp `json:"createdAt"`

	Raw json.RawMessage `json:"-"`
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*d = Document(p)
	d.Raw = raw
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	return encodeRaw(d.Raw, plain(d))
}

// CreateBoard is the body of CreateBoard. Known boolean options that are not
// set are sent as false.
type CreateBoard struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Options     BoardOptions `json:"options"`
}

// UpdateBoard is the body of UpdateBoard. Nil fields are left unchanged by
// the server.
type UpdateBoard struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Notify      *bool          `json:"notify,omitempty"`
	Options     BoardOptions   `json:"options,omitempty"`
	Roles       map[string]int `json:"roles,omitempty"`
}

// deleted is the soft-delete marker the API accepts on update endpoints.
type deleted struct {
	Deleted bool `json:"deleted"`
}

var softDelete = deleted{Deleted: true}

// Prompt is a query against a board together with its generated result.
type Prompt struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Prompt    string    `json:"prompt"`
	Result    string    `json:"result"`
	Original  string    `json:"original,omitempty"`
	Feedback  int       `json:"feedback"`
	Sensitive bool      `json:"sensitive"`
	Visible   bool      `json:"visible"`
	Saved     bool      `json:"saved,omitempty"`
	AudioURL  string    `json:"audioUrl,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (pr *Prompt) UnmarshalJSON(data []byte) error {
	type plain Prompt
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*pr = Prompt(p)
	pr.Raw = raw
	return nil
}

func (pr Prompt) MarshalJSON() ([]byte, error) {
	type plain Prompt
	return encodeRaw(pr.Raw, plain(pr))
}

// PromptBody is the body of SubmitPrompt.
type PromptBody struct {
	Prompt          string `json:"prompt"`
	TranslateResult bool   `json:"translateResult"`

	// Model selects the generation model; empty uses the board default.
	Model string `json:"model,omitempty"`

	// Instruction shapes the result, overriding the board's defaults.
	Instruction *PromptInstruction `json:"instruction,omitempty"`
}

// PromptInstruction is an inline instruction sent with a prompt.
type PromptInstruction struct {
	ContextDescription string `json:"contextDescription,omitempty"`
	ContextSample      string `json:"contextSample,omitempty"`
	ResultDescription  string `json:"resultDescription,omitempty"`
	ResultSample       string `json:"resultSample,omitempty"`
	IncludeDocs        bool   `json:"includeDocs"`
	Qty                int    `json:"qty,omitempty"`
}

// PromptResult is the response of SubmitPrompt.
type PromptResult struct {
	PromptID  string `json:"promptId"`
	Prompt    string `json:"prompt"`
	Result    string `json:"result"`
	Sensitive bool   `json:"sensitive"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (r *PromptResult) UnmarshalJSON(data []byte) error {
	type plain PromptResult
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*r = PromptResult(p)
	r.Raw = raw
	return nil
}

func (r PromptResult) MarshalJSON() ([]byte, error) {
	type plain PromptResult
	return encodeRaw(r.Raw, plain(r))
}

// Feedback values for UpdatePrompt.
const (
	FeedbackNone     = 0
	FeedbackPositive = 1
)

// UpdatePrompt is the body of UpdatePrompt. Nil fields are left unchanged.
type UpdatePrompt struct {
	Feedback *int    `json:"feedback,omitempty"`
	Saved    *bool   `json:"saved,omitempty"`
	Visible  *bool   `json:"visible,omitempty"`
	Result   *string `json:"result,omitempty"`
}

// Transcript is the body of GetTranscript. Either field may identify the audio.
type Transcript struct {
	AudioURL string `json:"audioUrl,omitempty"`
	FilePath string `json:"filePath,omitempty"`
}

// TranscriptResult is the text recognized in the audio.
type TranscriptResult struct {
	Transcript string `json:"transcript"`

	Raw json.RawMessage `json:"-"`
}

func (t *TranscriptResult) UnmarshalJSON(data []byte) error {
	type plain TranscriptResult
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*t = TranscriptResult(p)
	t.Raw = raw
	return nil
}

func (t TranscriptResult) MarshalJSON() ([]byte, error) {
	type plain TranscriptResult
	return encodeRaw(t.Raw, plain(t))
}

// Audio points at a synthesized reading of a prompt result.
type Audio struct {
	AudioURL string `json:"audioUrl"`

	Raw json.RawMessage `json:"-"`
}

func (a *Audio) UnmarshalJSON(data []byte) error {
	type plain Audio
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*a = Audio(p)
	a.Raw = raw
	return nil
}

func (a Audio) MarshalJSON() ([]byte, error) {
	type plain Audio
	return encodeRaw(a.Raw, plain(a))
}

// Instruction is a user-scoped template controlling prompt generation. As a
// request body, a non-empty Raw is sent in place of the fields.
type Instruction struct {
	ID                 string `json:"id,omitempty"`
	ContextDescription string `json:"contextDescription"`
	ContextSample      string `json:"contextSample"`
	ResultDescription  string `json:"resultDescription"`
	ResultSample       string `json:"resultSample"`
	IncludeDocs        bool   `json:"includeDocs"`
	Qty                int    `json:"qty"`

	// Raw is the body as received. When set, MarshalJSON writes it unchanged.
	Raw json.RawMessage `json:"-"`
}

func (in *Instruction) UnmarshalJSON(data []byte) error {
	type plain Instruction
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*in = Instruction(p)
	in.Raw = raw
	return nil
}

func (in Instruction) MarshalJSON() ([]byte, error) {
	type plain Instruction
	return encodeRaw(in.Raw, plain(in))
}

// InstructionID is the response of CreateInstruction.
type InstructionID struct {
	InstructionID string `json:"instructionId"`

	Raw json.RawMessage `json:"-"`
}

func (id *InstructionID) UnmarshalJSON(data []byte) error {
	type plain InstructionID
	var p plain
	raw, err := decodeLenient(data, &p)
	if err != nil {
		return err
	}
	*id = InstructionID(p)
	id.Raw = raw
	return nil
}

func (id InstructionID) MarshalJSON() ([]byte, error) {
	type plain InstructionID
	return encodeRaw(id.Raw, plain(id))
}

// Ack is the body returned by mutations. The API usually answers with a bare
// JSON boolean, occasionally with an object; Ack keeps whatever arrived.
type Ack struct {
	OK  bool
	Raw []byte
}

func (a *Ack) UnmarshalJSON(data []byte) error {
	a.Raw = append(a.Raw[:0], data...)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		a.OK = b
		return nil
	}
	// Anything other than a boolean is a successful response body.
	a.OK = true
	return nil
}

func (a Ack) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	if a.OK {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
