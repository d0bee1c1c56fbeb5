package trainer

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"tablecoach-go/engine"
	"tablecoach-go/games/baccarat"
	"tablecoach-go/games/blackjack"
	"tablecoach-go/games/paigow"
	"tablecoach-go/games/videopoker"
	"tablecoach-go/profiles"
	"tablecoach-go/session"
)

// Trainer wires the slash commands to the engine, the session manager and
// the profile store.
type Trainer struct {
	Sessions *session.Manager
	Profiles *profiles.Store
}

// New creates the trainer front end
func New(sessions *session.Manager, store *profiles.Store) *Trainer {
	return &Trainer{Sessions: sessions, Profiles: store}
}

// Commands returns the slash command definitions to register
func (t *Trainer) Commands() []*discordgo.ApplicationCommand {
	minDecks, maxDecks := 1.0, 8.0
	minCoins, maxCoins := 1.0, float64(videopoker.MaxCoins)
	minCount, maxCount := 1.0, 10.0

	gameChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Blackjack", Value: "blackjack"},
		{Name: "Baccarat", Value: "baccarat"},
		{Name: "Video Poker", Value: "videopoker"},
		{Name: "Pai Gow Poker", Value: "paigow"},
	}
	variantChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Jacks or Better", Value: "jacks"},
		{Name: "Bonus Poker", Value: "bonus"},
		{Name: "Double Bonus", Value: "double"},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "shoe",
			Description: "Manage your training shoe",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a fresh shoe and count",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "game", Description: "Game to train", Required: true, Choices: gameChoices},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "decks", Description: "Decks in the shoe (1-8)", MinValue: &minDecks, MaxValue: maxDecks},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "base_bet", Description: "Base betting unit"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the count, penetration and bet advice",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bet",
					Description: "Record a bet and check your heat level",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Bet amount", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the current training session",
				},
			},
		},
		{
			Name:        "deal",
			Description: "Deal cards from your training shoe",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "count", Description: "Cards to deal (1-10)", MinValue: &minCount, MaxValue: maxCount},
			},
		},
		{
			Name:        "advise",
			Description: "Get the basic strategy play for a blackjack hand",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "hand", Description: "Your cards, e.g. 10S 7H", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "dealer", Description: "Dealer upcard, e.g. 6D", Required: true},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "h17", Description: "Dealer hits soft 17 (default stands)"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "no_double", Description: "Doubling not allowed"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "no_split", Description: "Splitting not allowed"},
			},
		},
		{
			Name:        "videopoker",
			Description: "Find the best hold for a dealt video poker hand",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "hand", Description: "Five cards, e.g. AS AH 2C 5D 9S", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "variant", Description: "Paytable variant", Choices: variantChoices},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "coins", Description: "Coins played (1-5)", MinValue: &minCoins, MaxValue: maxCoins},
			},
		},
		{
			Name:        "paigow",
			Description: "Set a seven-card Pai Gow hand: house way and optimal split",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "hand", Description: "Seven cards, JOKER allowed, e.g. AS KD KH 9C 8C 7D JOKER", Required: true},
			},
		},
		{
			Name:        "roads",
			Description: "Draw the baccarat roadmaps for a result sequence",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "results", Description: "Sequence of P/B/T, e.g. BBPTPB", Required: true},
			},
		},
		{
			Name:        "coach",
			Description: "Export your session state as a coaching snapshot",
		},
	}
}

// HandleInteraction dispatches a slash command interaction
func (t *Trainer) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		RespondWithError(s, i, "Could not identify you. Try again.")
		return
	}

	switch i.ApplicationCommandData().Name {
	case "shoe":
		t.handleShoe(s, i, userID)
	case "deal":
		t.handleDeal(s, i, userID)
	case "advise":
		t.handleAdvise(s, i, userID)
	case "videopoker":
		t.handleVideoPoker(s, i, userID)
	case "paigow":
		t.handlePaiGow(s, i, userID)
	case "roads":
		t.handleRoads(s, i)
	case "coach":
		t.handleCoach(s, i, userID)
	}
}

func (t *Trainer) handleShoe(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		RespondWithError(s, i, "Missing subcommand.")
		return
	}
	sub := options[0]

	switch sub.Name {
	case "start":
		t.handleShoeStart(s, i, userID, sub.Options)
	case "status":
		t.handleShoeStatus(s, i, userID)
	case "bet":
		t.handleShoeBet(s, i, userID, sub.Options)
	case "end":
		t.Sessions.End(userID)
		embed := CreateBrandedEmbed("Session Ended", "Your training session is over. Start a new shoe with `/shoe start`.", ColorInfo)
		_ = SendInteractionResponse(s, i, embed, false)
	}
}

func (t *Trainer) handleShoeStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	game := engine.Blackjack
	numDecks := 6
	var baseBet int64 = 10

	for _, opt := range opts {
		switch opt.Name {
		case "game":
			game = parseGame(opt.StringValue())
		case "decks":
			numDecks = int(opt.IntValue())
		case "base_bet":
			baseBet = opt.IntValue()
		}
	}
	if baseBet < 1 {
		baseBet = 1
	}
	if game == engine.PaiGow || game == engine.VideoPoker {
		numDecks = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	player, err := t.Profiles.GetPlayer(ctx, userID)
	if err != nil {
		log.Printf("Failed to load player %d: %v", userID, err)
		RespondWithError(s, i, "Could not load your profile. Try again.")
		return
	}

	ts := t.Sessions.Start(userID, game, numDecks, player.Bankroll, baseBet)
	embed := CreateBrandedEmbed(
		fmt.Sprintf("%s Training Started", titleCase(game.String())),
		fmt.Sprintf("%s\nBankroll **%d**, base bet **%d**.\nUse `/deal` to draw cards and `/shoe status` to check the count.",
			ts.Describe(), ts.Bankroll, ts.BaseBet),
		ColorInfo,
	)
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleShoeStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	ts, ok := t.Sessions.Get(userID)
	if !ok {
		RespondWithError(s, i, "No active session. Start one with `/shoe start`.")
		return
	}

	tracker := ts.Tracker
	embed := CreateBrandedEmbed(fmt.Sprintf("%s Shoe Status", titleCase(ts.Game.String())), ts.Describe(), ColorInfo)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Running Count", Value: fmt.Sprintf("%+d", tracker.RunningCount()), Inline: true},
		{Name: "True Count", Value: fmt.Sprintf("%.1f", tracker.TrueCount()), Inline: true},
		{Name: "Penetration", Value: fmt.Sprintf("%.0f%%", tracker.Penetration()*100), Inline: true},
		{Name: "Player Advantage", Value: fmt.Sprintf("%.2f%%", tracker.PlayerAdvantage()), Inline: true},
		{Name: "Recommended Bet", Value: fmt.Sprintf("%d", tracker.RecommendedBet(ts.BaseBet)), Inline: true},
		{Name: "Heat Level", Value: fmt.Sprintf("%d/10", tracker.HeatLevel(ts.BetLog)), Inline: true},
	}
	if tracker.Penetration() < engine.MinBetPenetration {
		embed.Description += "\nShoe is too fresh for the count to mean much yet."
	}
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleShoeBet(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	ts, ok := t.Sessions.Get(userID)
	if !ok {
		RespondWithError(s, i, "No active session. Start one with `/shoe start`.")
		return
	}

	var amount int64
	for _, opt := range opts {
		if opt.Name == "amount" {
			amount = opt.IntValue()
		}
	}
	if amount < 1 {
		RespondWithError(s, i, "Bet must be at least 1.")
		return
	}

	ts.RecordBet(amount)
	recommended := ts.Tracker.RecommendedBet(ts.BaseBet)
	heat := ts.Tracker.HeatLevel(ts.BetLog)

	description := fmt.Sprintf("Recorded bet of **%d**. Count-driven recommendation: **%d**.", amount, recommended)
	color := ColorAdvice
	if heat >= 6 {
		description += "\nYour spread is drawing attention. Flatten your bets for a while."
		color = ColorWarning
	}
	embed := CreateBrandedEmbed("Bet Recorded", description, color)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Heat Level", Value: fmt.Sprintf("%d/10", heat), Inline: true},
		{Name: "True Count", Value: fmt.Sprintf("%.1f", ts.Tracker.TrueCount()), Inline: true},
	}
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleDeal(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	ts, ok := t.Sessions.Get(userID)
	if !ok {
		RespondWithError(s, i, "No active session. Start one with `/shoe start`.")
		return
	}
	if !t.consumeRound(s, i, userID) {
		return
	}

	count := 2
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "count" {
			count = int(opt.IntValue())
		}
	}

	before := ts.Tracker.Shoe().Generation()
	cards := ts.Deal(count)
	reshuffled := ts.Tracker.Shoe().Generation() != before

	description := fmt.Sprintf("**%s**\n%s", FormatCards(cards), ts.Describe())
	if reshuffled {
		description = "The shoe was reshuffled before this deal; the count reset.\n" + description
	}

	embed := CreateBrandedEmbed("Cards Dealt", description, ColorInfo)
	if (ts.Game == engine.Blackjack || ts.Game == engine.Baccarat) && len(cards) >= 2 {
		ev := engine.Evaluate(cards, ts.Game)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Hand", Value: ev.Label, Inline: true},
			{Name: "Running Count", Value: fmt.Sprintf("%+d", ts.Tracker.RunningCount()), Inline: true},
		}
	}
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleAdvise(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	if !t.consumeRound(s, i, userID) {
		return
	}

	var handInput, dealerInput string
	rules := blackjack.DefaultRules
	canDouble, canSplit := true, true
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "hand":
			handInput = opt.StringValue()
		case "dealer":
			dealerInput = opt.StringValue()
		case "h17":
			rules.DealerHitsSoft17 = opt.BoolValue()
		case "no_double":
			canDouble = !opt.BoolValue()
		case "no_split":
			canSplit = !opt.BoolValue()
		}
	}

	hand, err := ParseCards(handInput)
	if err != nil {
		RespondWithError(s, i, fmt.Sprintf("Bad hand: %v", err))
		return
	}
	if len(hand) < 2 {
		RespondWithError(s, i, "A blackjack hand needs at least two cards.")
		return
	}
	dealer, err := ParseCardsExact(dealerInput, 1)
	if err != nil {
		RespondWithError(s, i, fmt.Sprintf("Bad dealer upcard: %v", err))
		return
	}

	advice := blackjack.GetOptimalPlay(hand, dealer[0], canDouble, canSplit, 1, rules)
	ev := engine.EvaluateBlackjack(hand)

	embed := CreateBrandedEmbed(
		fmt.Sprintf("Basic Strategy: %s", advice.Action),
		fmt.Sprintf("**%s** (%s) vs dealer **%s**\n%s", FormatCards(hand), ev.Label, dealer[0], advice.Reason),
		ColorAdvice,
	)
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleVideoPoker(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	if !t.consumeRound(s, i, userID) {
		return
	}

	var handInput string
	variant := videopoker.JacksOrBetter
	var coins int64 = videopoker.MaxCoins
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "hand":
			handInput = opt.StringValue()
		case "variant":
			variant = parseVariant(opt.StringValue())
		case "coins":
			coins = opt.IntValue()
		}
	}

	cards, err := ParseCardsExact(handInput, 5)
	if err != nil {
		RespondWithError(s, i, fmt.Sprintf("Bad hand: %v", err))
		return
	}
	var hand [5]engine.Card
	copy(hand[:], cards)

	decision := videopoker.GetOptimalHold(hand, variant, coins)

	var lines []string
	lines = append(lines, fmt.Sprintf("Dealt: **%s**", FormatCards(cards)))
	lines = append(lines, fmt.Sprintf("Hold: **%s** — %s", formatHold(cards, decision.HeldIndices), decision.Reasoning))
	lines = append(lines, fmt.Sprintf("Estimated value: %.2f coins", decision.ExpectedValue))
	if len(decision.Alternatives) > 0 {
		lines = append(lines, "", "Next best holds:")
		for _, alt := range decision.Alternatives {
			lines = append(lines, fmt.Sprintf("• %s (%.2f) — %s", formatHold(cards, alt.HeldIndices), alt.ExpectedValue, alt.Reasoning))
		}
	}

	embed := CreateBrandedEmbed(
		fmt.Sprintf("%s Hold Advice", variant),
		strings.Join(lines, "\n"),
		ColorAdvice,
	)
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handlePaiGow(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	if !t.consumeRound(s, i, userID) {
		return
	}

	var handInput string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "hand" {
			handInput = opt.StringValue()
		}
	}

	cards, err := ParseCardsExact(handInput, 7)
	if err != nil {
		RespondWithError(s, i, fmt.Sprintf("Bad hand: %v", err))
		return
	}
	jokers := 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
		}
	}
	if jokers > 1 {
		RespondWithError(s, i, "Only one joker plays in Pai Gow.")
		return
	}
	var seven [7]engine.Card
	copy(seven[:], cards)

	houseWay := paigow.SetHouseWay(seven)
	optimal := paigow.FindOptimalSet(seven)

	description := fmt.Sprintf("Dealt: **%s**\n\n**House way**\n%s\n\n**Optimal**\n%s",
		FormatCards(cards), formatSplit(houseWay), formatSplit(optimal.HandSplit))
	if optimal.IsHouseWay {
		description += "\nThe house way is already the best setting here."
	}

	embed := CreateBrandedEmbed("Pai Gow Setting", description, ColorAdvice)
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleRoads(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var input string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "results" {
			input = opt.StringValue()
		}
	}

	results, err := parseResults(input)
	if err != nil {
		RespondWithError(s, i, fmt.Sprintf("Bad results: %v", err))
		return
	}

	big := baccarat.GenerateBigRoad(results)
	embed := CreateBrandedEmbed(
		"Baccarat Roadmaps",
		fmt.Sprintf("%d results, %d Big Road columns. Derived roads describe streak periodicity; they predict nothing.", len(results), len(big)),
		ColorInfo,
	)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Big Road", Value: formatBigRoad(big)},
		{Name: "Big Eye Boy", Value: formatMarks(baccarat.GenerateBigEyeBoy(results))},
		{Name: "Small Road", Value: formatMarks(baccarat.GenerateSmallRoad(results))},
		{Name: "Cockroach Road", Value: formatMarks(baccarat.GenerateCockroachRoad(results))},
	}
	_ = SendInteractionResponse(s, i, embed, false)
}

func (t *Trainer) handleCoach(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	ts, ok := t.Sessions.Get(userID)
	if !ok {
		RespondWithError(s, i, "No active session. Start one with `/shoe start`.")
		return
	}

	snapshot := ts.BuildSnapshot(nil, ts.BetLog)
	payload, err := snapshot.Marshal()
	if err != nil {
		log.Printf("Failed to marshal snapshot for user %d: %v", userID, err)
		RespondWithError(s, i, "Could not build the snapshot. Try again.")
		return
	}

	embed := CreateBrandedEmbed(
		"Coaching Snapshot",
		fmt.Sprintf("```json\n%s\n```", payload),
		ColorInfo,
	)
	_ = SendInteractionResponse(s, i, embed, true)
}

// consumeRound spends a daily training round, responding itself when the
// allowance is exhausted or the store fails.
func (t *Trainer) consumeRound(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := t.Profiles.ConsumeTrainingRound(ctx, userID)
	if err != nil {
		log.Printf("Failed to consume training round for %d: %v", userID, err)
		RespondWithError(s, i, "Could not check your daily rounds. Try again.")
		return false
	}
	if !ok {
		player, err := t.Profiles.GetPlayer(ctx, userID)
		limit := profiles.FreeDailyRounds
		if err == nil {
			limit = player.DailyLimit()
		}
		_ = SendInteractionResponse(s, i, RoundsExhaustedEmbed(limit), true)
		return false
	}
	return true
}

func interactionUserID(i *discordgo.InteractionCreate) (int64, error) {
	var discordID string
	if i.Member != nil && i.Member.User != nil {
		discordID = i.Member.User.ID
	} else if i.User != nil {
		discordID = i.User.ID
	}
	return strconv.ParseInt(discordID, 10, 64)
}

func parseGame(name string) engine.Game {
	switch name {
	case "baccarat":
		return engine.Baccarat
	case "videopoker":
		return engine.VideoPoker
	case "paigow":
		return engine.PaiGow
	default:
		return engine.Blackjack
	}
}

func parseVariant(name string) videopoker.Variant {
	switch name {
	case "bonus":
		return videopoker.BonusPoker
	case "double":
		return videopoker.DoubleBonus
	default:
		return videopoker.JacksOrBetter
	}
}

func parseResults(input string) ([]baccarat.Result, error) {
	results := []baccarat.Result{}
	for _, r := range strings.ToUpper(input) {
		switch r {
		case 'P':
			results = append(results, baccarat.Player)
		case 'B':
			results = append(results, baccarat.Banker)
		case 'T':
			results = append(results, baccarat.Tie)
		case ' ', ',':
		default:
			return nil, fmt.Errorf("unrecognized result %q (use P, B or T)", r)
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results given")
	}
	return results, nil
}

func formatHold(cards []engine.Card, held []int) string {
	if len(held) == 0 {
		return "draw five"
	}
	parts := make([]string, len(held))
	for i, idx := range held {
		parts[i] = cards[idx].String()
	}
	return strings.Join(parts, " ")
}

func formatSplit(split paigow.HandSplit) string {
	high := engine.EvaluateFive(split.High5)
	low := engine.EvaluateTwo(split.Low2)
	return fmt.Sprintf("Back: %s (%s)\nFront: %s (%s)",
		FormatCards(split.High5[:]), high.Label, FormatCards(split.Low2[:]), low.Label)
}

func formatBigRoad(columns []baccarat.Column) string {
	if len(columns) == 0 {
		return "empty"
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		cells := make([]string, len(col))
		for j, cell := range col {
			symbol := "🔴"
			if cell.Result == baccarat.Player {
				symbol = "🔵"
			}
			if cell.TieCount > 0 {
				symbol += fmt.Sprintf("(%dT)", cell.TieCount)
			}
			cells[j] = symbol
		}
		parts[i] = strings.Join(cells, "")
	}
	return strings.Join(parts, " | ")
}

func formatMarks(road [][]baccarat.Mark) string {
	if len(road) == 0 {
		return "not enough columns yet"
	}
	parts := make([]string, len(road))
	for i, col := range road {
		cells := make([]string, len(col))
		for j, mark := range col {
			if mark == baccarat.Repeat {
				cells[j] = "●"
			} else {
				cells[j] = "○"
			}
		}
		parts[i] = strings.Join(cells, "")
	}
	return strings.Join(parts, " | ")
}

func titleCase(s string) string {
	switch s {
	case "video_poker":
		return "Video Poker"
	case "pai_gow":
		return "Pai Gow"
	default:
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
