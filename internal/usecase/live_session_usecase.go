package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sparkle_shine/internal/domain/audio"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var ErrLiveClientFailed = errors.New("live client failed")

// Normal ends of a relay. They cancel the other pump but are not reported
// to the visitor.
var (
	errClientStopped = errors.New("client stopped")
	errModelClosed   = errors.New("model closed the session")
)

// ILiveSessionUseCase is the voice mode of the assistant.
//
// Run blocks for the whole voice session and relays audio between client
// and the live model until either side stops. The client always receives a
// final "closed" state, and the conversation's live flag is cleared on
// return.

type ILiveSessionUseCase interface {
	Run(ctx context.Context, conversationID string, client interfaces.ILiveClient) error
}

type LiveSessionUseCase struct {
	repo    interfaces.IConversationRepository
	gateway interfaces.ILiveAssistantGateway
	log     *zap.SugaredLogger
	now     func() time.Time
}

var _ ILiveSessionUseCase = (*LiveSessionUseCase)(nil)

func NewLiveSessionUseCase(repo interfaces.IConversationRepository, gateway interfaces.ILiveAssistantGateway, log *zap.SugaredLogger) *LiveSessionUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LiveSessionUseCase{repo: repo, gateway: gateway, log: log, now: time.Now}
}

func (u *LiveSessionUseCase) Run(ctx context.Context, conversationID string, client interfaces.ILiveClient) error {
	r := &liveRelay{
		uc:             u,
		client:         client,
		conversationID: strings.TrimSpace(conversationID),
		state:          entities.LiveStateIdle,
		scheduler:      audio.NewPlaybackScheduler(),
		framer:         audio.NewFramer(audio.FrameSize),
		started:        u.now(),
	}
	return r.run(ctx)
}

type liveRelay struct {
	uc             *LiveSessionUseCase
	client         interfaces.ILiveClient
	session        interfaces.ILiveSession
	conversationID string

	scheduler *audio.PlaybackScheduler
	framer    *audio.Framer
	started   time.Time

	mu         sync.Mutex
	state      entities.LiveSessionState
	transcript strings.Builder
}

func (r *liveRelay) run(ctx context.Context) (err error) {
	log := r.uc.log.With("conversation_id", r.conversationID)

	// Teardown must reach the client even when ctx is already done.
	final := context.WithoutCancel(ctx)
	defer func() {
		r.scheduler.Interrupt()
		if r.session != nil {
			_ = r.session.Close()
		}
		if err != nil {
			_ = r.send(final, interfaces.LiveEvent{Type: interfaces.LiveEventError, Text: err.Error()})
		}
		r.transition(final, entities.LiveStateClosed)
	}()

	if r.conversationID == "" {
		return ErrInvalidConversationID
	}
	conv, err := r.uc.repo.Update(ctx, r.conversationID, func(c *entities.Conversation) error {
		return c.StartLive()
	})
	if err != nil {
		log.Infow("[live][usecase] start rejected", "error", err)
		return err
	}
	if conv.ID == "" {
		return ErrConversationNotFound
	}
	defer func() {
		if _, endErr := r.uc.repo.Update(final, r.conversationID, func(c *entities.Conversation) error {
			c.EndLive()
			return nil
		}); endErr != nil {
			log.Errorw("[live][usecase] clear live flag failed", "error", endErr)
		}
	}()

	r.transition(ctx, entities.LiveStateConnecting)
	session, err := r.uc.gateway.Connect(ctx)
	if err != nil {
		log.Warnw("[live][usecase] connect failed", "error", err)
		return fmt.Errorf("connect live model: %w", err)
	}
	r.session = session
	r.transition(ctx, entities.LiveStateStreaming)
	log.Infow("[live][usecase] session streaming")

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(r.uplink)
	p.Go(r.downlink)
	err = p.Wait()

	switch {
	case errors.Is(err, errClientStopped), errors.Is(err, errModelClosed):
		log.Infow("[live][usecase] session ended", "reason", err.Error(), "elapsed", r.elapsed())
		return nil
	case err != nil && ctx.Err() != nil:
		log.Infow("[live][usecase] session cancelled", "elapsed", r.elapsed())
		return nil
	case err != nil:
		log.Warnw("[live][usecase] session failed", "error", err, "elapsed", r.elapsed())
		return err
	}
	return nil
}

// uplink converts microphone audio to 16 kHz PCM16 frames for the model.
func (r *liveRelay) uplink(ctx context.Context) error {
	for {
		frame, err := r.client.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", errClientStopped, err)
		}

		switch frame.Type {
		case interfaces.LiveClientStop:
			return errClientStopped
		case interfaces.LiveClientError:
			return fmt.Errorf("%w: %s", ErrLiveClientFailed, frame.Message)
		case interfaces.LiveClientAudio:
			samples := audio.Resample(frame.Samples, frame.SampleRate, audio.InputSampleRate)
			for _, f := range r.framer.Push(samples) {
				if err := r.session.SendAudio(ctx, audio.NewPCMBlob(f, audio.InputSampleRate)); err != nil {
					return fmt.Errorf("send audio: %w", err)
				}
			}
		}
	}
}

// downlink forwards model output to the client, scheduling each audio chunk
// on the playback timeline.
func (r *liveRelay) downlink(ctx context.Context) error {
	for {
		ev, err := r.session.Receive(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errModelClosed
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("receive from model: %w", err)
		}
		if err := r.handle(ctx, ev); err != nil {
			return err
		}
	}
}

func (r *liveRelay) handle(ctx context.Context, ev entities.LiveServerEvent) error {
	if ev.Transcription != "" {
		r.mu.Lock()
		r.transcript.WriteString(ev.Transcription)
		r.mu.Unlock()
		if err := r.send(ctx, interfaces.LiveEvent{Type: interfaces.LiveEventTranscription, Text: ev.Transcription}); err != nil {
			return err
		}
	}

	if ev.TurnComplete {
		if err := r.completeTurn(ctx); err != nil {
			return err
		}
	}

	if len(ev.Audio) > 0 {
		r.resume(ctx)
		d := audio.PCM16Duration(len(ev.Audio), audio.OutputSampleRate)
		buf := r.scheduler.Schedule(r.elapsed(), d)
		if err := r.send(ctx, interfaces.LiveEvent{
			Type:       interfaces.LiveEventAudio,
			Data:       base64.StdEncoding.EncodeToString(ev.Audio),
			SampleRate: audio.OutputSampleRate,
			StartAtMS:  buf.StartAt.Milliseconds(),
			DurationMS: d.Milliseconds(),
		}); err != nil {
			return err
		}
	}

	if ev.Interrupted {
		stopped := r.scheduler.Interrupt()
		r.uc.log.Debugw("[live][usecase] playback interrupted", "conversation_id", r.conversationID, "buffers", len(stopped))
		r.transition(ctx, entities.LiveStateInterrupted)
		if err := r.send(ctx, interfaces.LiveEvent{Type: interfaces.LiveEventInterrupted}); err != nil {
			return err
		}
	}
	return nil
}

// completeTurn stores the accumulated transcription as one model message.
func (r *liveRelay) completeTurn(ctx context.Context) error {
	r.mu.Lock()
	text := r.transcript.String()
	r.transcript.Reset()
	r.mu.Unlock()

	var msg entities.ChatMessage
	if _, err := r.uc.repo.Update(ctx, r.conversationID, func(c *entities.Conversation) error {
		msg = c.AppendLiveTurn(text)
		c.UpdatedAt = r.uc.now().UTC()
		return nil
	}); err != nil {
		return fmt.Errorf("store live turn: %w", err)
	}
	if msg.Text == "" {
		// Conversation expired; still tell the client the turn is over.
		msg = (&entities.Conversation{}).AppendLiveTurn(text)
	}

	r.resume(ctx)
	return r.send(ctx, interfaces.LiveEvent{Type: interfaces.LiveEventTurnComplete, Text: msg.Text})
}

// resume leaves the interrupted state once the model speaks again.
func (r *liveRelay) resume(ctx context.Context) {
	r.mu.Lock()
	interrupted := r.state == entities.LiveStateInterrupted
	r.mu.Unlock()
	if interrupted {
		r.transition(ctx, entities.LiveStateStreaming)
	}
}

func (r *liveRelay) transition(ctx context.Context, next entities.LiveSessionState) {
	r.mu.Lock()
	s, err := r.state.Transition(next)
	if err == nil {
		r.state = s
	}
	r.mu.Unlock()
	if err != nil {
		return
	}
	_ = r.send(ctx, interfaces.LiveEvent{Type: interfaces.LiveEventState, State: string(next)})
}

func (r *liveRelay) send(ctx context.Context, ev interfaces.LiveEvent) error {
	if err := r.client.Send(ctx, ev); err != nil {
		return fmt.Errorf("%w: %v", errClientStopped, err)
	}
	return nil
}

func (r *liveRelay) elapsed() time.Duration {
	return r.uc.now().Sub(r.started)
}
