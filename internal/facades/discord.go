package facades

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/commands"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=discord.go -destination=discord_mock.go -package=facades

const (
	embedColor     = 0xF1C40F
	commandTimeout = 30 * time.Second
)

// DiscordAPI is the part of *discordgo.Session the facade talks to.
type DiscordAPI interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CommandHandler runs a text command for a chat user.
type CommandHandler interface {
	Handle(ctx context.Context, authorID, content string) (commands.Reply, bool)
}

// DiscordFacade delivers direct messages and routes chat messages into commands.
type DiscordFacade struct {
	api      DiscordAPI
	commands CommandHandler
}

// NewDiscordFacade creates a facade over a Discord session.
func NewDiscordFacade(api DiscordAPI, cmds CommandHandler) *DiscordFacade {
	return &DiscordFacade{api: api, commands: cmds}
}

// NewDiscordSession creates a bot session that receives guild and direct
// message content.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	return s, nil
}

// SendDM delivers msg to userID as an embed in their private channel.
func (f *DiscordFacade) SendDM(ctx context.Context, userID string, msg models.DMMessage) error {
	ch, err := f.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		logger.Log.Errorw("failed to open DM channel", "user_id", userID, "error", err)
		return fmt.Errorf("open DM channel: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Body,
		Color:       embedColor,
	}
	if _, err := f.api.ChannelMessageSendEmbed(ch.ID, embed, discordgo.WithContext(ctx)); err != nil {
		logger.Log.Errorw("failed to send DM", "user_id", userID, "error", err)
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}

// OnMessageCreate is registered with the session. Messages of the bot itself
// are ignored, other bots may use commands.
func (f *DiscordFacade) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if s != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	f.HandleMessage(ctx, m.Message)
}

// HandleMessage runs the command in m, if any, and sends the reply. Private
// replies go to the author's DMs.
func (f *DiscordFacade) HandleMessage(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil {
		return
	}

	reply, ok := f.commands.Handle(ctx, m.Author.ID, m.Content)
	if !ok || reply.Text == "" {
		return
	}

	channelID := m.ChannelID
	if reply.Private && m.GuildID != "" {
		ch, err := f.api.UserChannelCreate(m.Author.ID, discordgo.WithContext(ctx))
		if err != nil {
			logger.Log.Errorw("failed to open DM channel", "user_id", m.Author.ID, "error", err)
			return
		}
		channelID = ch.ID
	}

	if _, err := f.api.ChannelMessageSend(channelID, reply.Text, discordgo.WithContext(ctx)); err != nil {
		logger.Log.Errorw("failed to send reply", "channel_id", channelID, "error", err)
	}
}
