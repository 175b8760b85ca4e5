package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/mailer"
	"timo-intelligence-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

const (
	chatRateLimit    = 20
	chatRateWindow   = time.Minute
	chatMaxHistory   = 20
	chatMaxLength    = 2000
	chatLeadTopicMax = 200

	// actionEmailMarker is emitted by the model when the visitor asks
	// for a demo, a quote or an integration. The widget turns it into
	// a mail call to action, so it is stripped from the reply text and
	// surfaced as a flag instead.
	actionEmailMarker = "[ACTION_EMAIL]"
)

var ErrTooManyChats = errors.New("too many chat requests, slow down")

// timoSystemPrompt steers the site assistant. Kept in Dutch since that
// is the primary audience, with explicit multi-language instructions.
const timoSystemPrompt = `ROL EN IDENTITEIT
Je bent Timo, het intelligente digitale brein van Timo Intelligence. Je bent ontwikkeld vanuit de visie van Frank Kampschreur.

JOUW MISSIE (DE 8+ STANDAARD)
1. Tevredenheid: De tevreden medewerker en klant zijn de ruggengraat van de organisatie.
2. Kwaliteit: Wij nemen geen genoegen met een zesje. Alles moet minimaal een 8+ zijn.
3. Onafhankelijkheid: Wij hebben alles in eigen beheer ontwikkeld omdat standaard marktsoftware niet voldoet.

DOELGROEP & TAAL
Je ondersteunt iedereen op de werkvloer.
- Je spreekt en begrijpt: Nederlands, Engels, Pools, Spaans, Turks en Eritrees (Tigrinya).
- Je bent de gids: Gebruikers lezen geen handleidingen. Jij helpt ze direct.

HET AANBOD & PRIJSSTRATEGIE (ROI)
1. Partners: GRATIS. Timo Intelligence investeert in het partnerschap.
2. Externe Partijen:
   - Module: €20.000,-/jaar.
   - Full Suite: €100.000,-/jaar (inclusief toekomstige updates).
   - Mindset: Het is een investering in efficiency, geen kostenpost.

TIMO INTELLIGENCE PRODUCTEN
- Timo Fleet: Fleet management oplossing
- Timo Tender: Tender management systeem
- Timo Insights: Data analytics en inzichten
- Timo Vision: Visuele analyse en monitoring

HET GEDRAG (DE OUTLOOK TRIGGER)
- Antwoord kort en behulpzaam.
- Zodra een gebruiker vraagt naar:
  A) Een live demo of afspraak
  B) Een offerte of prijsvoorstel
  C) Complexe integraties
  ...dan geef je een kort antwoord en eindig je met het keyword: [ACTION_EMAIL].

BELANGRIJK:
- Detecteer automatisch de taal van de gebruiker en antwoord in diezelfde taal (Nederlands, Engels, Pools, Spaans, Turks of Tigrinya).
- Gebruik [ACTION_EMAIL] alleen bij de bovenstaande triggers (demo, offerte, integraties).
- Wees vriendelijk, professioneel en behulpzaam, maar blijf kort en to the point.`

type IChatbotService interface {
	SendChat(ctx context.Context, req *dto.ChatRequest, ipAddress string) (*dto.ChatResponse, error)
}

// chatbotService proxies the site widget to the configured LLM. The
// conversation lives client side; every request carries its own history.
type chatbotService struct {
	provider llm.LLMProvider
	mail     mailer.IEmailService
	rates    *cache.Cache
	log      logger.ILogger
}

func NewChatbotService(provider llm.LLMProvider, mail mailer.IEmailService, log logger.ILogger) IChatbotService {
	return &chatbotService{
		provider: provider,
		mail:     mail,
		rates:    cache.New(chatRateWindow, 30*time.Second),
		log:      log,
	}
}

func (s *chatbotService) SendChat(ctx context.Context, req *dto.ChatRequest, ipAddress string) (*dto.ChatResponse, error) {
	rateKey := "chat:" + ipAddress
	if count, found := s.rates.Get(rateKey); found && count.(int) >= chatRateLimit {
		return nil, ErrTooManyChats
	}
	if _, err := s.rates.IncrementInt(rateKey, 1); err != nil {
		s.rates.Set(rateKey, 1, chatRateWindow)
	}

	if len(req.Messages) == 0 {
		return nil, errors.New("messages array is required")
	}

	history := make([]llm.Message, 0, len(req.Messages)+1)
	history = append(history, llm.Message{Role: "system", Content: timoSystemPrompt})

	// Only the most recent turns; the prompt already carries the
	// durable context.
	msgs := req.Messages
	if len(msgs) > chatMaxHistory {
		msgs = msgs[len(msgs)-chatMaxHistory:]
	}
	for _, msg := range msgs {
		text := msg.Content
		if len([]rune(text)) > chatMaxLength {
			text = string([]rune(text)[:chatMaxLength])
		}
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "assistant"
		}
		history = append(history, llm.Message{Role: role, Content: text})
	}

	reply, err := s.provider.Chat(ctx, history, llm.WithTemperature(0.7))
	if err != nil {
		s.log.Error("Chatbot", "LLM request failed", map[string]interface{}{"error": err.Error()})
		return nil, errors.New("assistant is unavailable, try again later")
	}

	actionEmail := strings.Contains(reply, actionEmailMarker)
	reply = strings.TrimSpace(strings.ReplaceAll(reply, actionEmailMarker, ""))

	if actionEmail {
		s.notifyLead(msgs)
	}

	return &dto.ChatResponse{
		Reply:       reply,
		ActionEmail: actionEmail,
	}, nil
}

// notifyLead forwards a chatbot lead to the inbox. Best effort: a mail
// failure never fails the chat response.
func (s *chatbotService) notifyLead(msgs []dto.ChatMessage) {
	var lastUser string
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != "assistant" && msgs[i].Role != "model" {
			lastUser = msgs[i].Content
			break
		}
	}

	topic := lastUser
	if len([]rune(topic)) > chatLeadTopicMax {
		topic = string([]rune(topic)[:chatLeadTopicMax])
	}

	if err := s.mail.SendChatLead(topic, lastUser); err != nil {
		s.log.Warn("Chatbot", "Failed to deliver chat lead", map[string]interface{}{"error": err.Error()})
		return
	}
	s.log.Info("Chatbot", "Chat lead delivered", nil)
}
