package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/content"
	"github.com/kleancode/portfolio/nav"
)

const inputClass = "w-full px-4 py-3 bg-surface rounded-xl border border-border focus:border-primary focus:ring-1 focus:ring-primary outline-none transition-all placeholder:text-muted-foreground/30"

// ContactSection renders the whole #contact section: heading, form card and
// contact information.
func ContactSection(c content.Content, sec contact.Section, csrf string) templ.Component {
	return component(func(ctx context.Context, h *markup) error {
		h.raw(`<section id="`, nav.ContactAnchor, `" class="py-32 relative overflow-hidden">`)
		h.raw(`<div class="container mx-auto px-6 relative z-10">`)
		h.raw(`<div class="text-center max-w-3xl mx-auto mb-16">`,
			`<span class="text-secondary-foreground text-sm font-medium tracking-wider uppercase">Get In Touch</span>`,
			`<h2 class="text-4xl md:text-5xl font-bold mt-4 mb-6 text-secondary-foreground">Let&#39;s build <span class="font-serif italic font-normal text-white">something great.</span></h2>`,
			`<p class="text-muted-foreground">Have a project in mind? I&#39;d love to hear about it. Send me a message and let&#39;s discuss how we can work together.</p>`,
			`</div>`)

		h.raw(`<div class="grid lg:grid-cols-2 gap-12 max-w-5xl mx-auto">`)
		if err := h.render(ctx, ContactCard(sec, c.ReplyFrom, csrf)); err != nil {
			return err
		}
		contactInfo(h, c)
		h.raw(`</div></div></section>`)
		return nil
	})
}

// ContactCard renders the form card in whichever state sec is in. It is also
// the fragment returned to script-driven submissions.
func ContactCard(sec contact.Section, replyFrom, csrf string) templ.Component {
	return component(func(ctx context.Context, h *markup) error {
		h.raw(`<div id="contact-card" class="glass p-8 rounded-3xl border border-primary/30 min-h-[480px] flex flex-col items-center justify-center relative overflow-hidden"`)
		h.attr("data-status", statusValue(sec.Status.Type))
		h.raw(`>`)
		if sec.Status.IsSuccess() {
			contactSuccess(h, sec.Status, replyFrom, csrf)
		} else {
			contactForm(h, sec, csrf)
		}
		h.raw(`</div>`)
		return nil
	})
}

func contactSuccess(h *markup, st contact.Status, replyFrom, csrf string) {
	h.raw(`<div class="text-center space-y-6 animate-scale-in flex flex-col items-center" role="status">`)
	h.raw(`<div class="w-24 h-24 bg-green-500/10 rounded-full flex items-center justify-center border border-green-500/20">`)
	h.icon("check-circle", "w-12 h-12 text-green-400")
	h.raw(`</div>`)
	h.raw(`<div class="space-y-4"><h3 class="text-2xl font-bold text-white">Message Received!</h3><p class="text-green-400/90 font-medium max-w-[320px] mx-auto leading-relaxed">`)
	h.text(st.Message)
	h.raw(`</p></div>`)
	if replyFrom != "" {
		h.raw(`<div class="bg-surface/50 border border-border p-5 rounded-2xl max-w-[320px] shadow-inner">`,
			`<p class="text-xs text-muted-foreground uppercase tracking-[0.2em] mb-2 font-semibold">Important Note</p>`,
			`<p class="text-sm text-white/80 leading-relaxed">Keep an eye on your inbox for a message from<span class="text-primary font-bold block mt-1 text-base">`)
		h.text(replyFrom)
		h.raw(`</span></p></div>`)
	}
	h.raw(`<form method="post" action="/contact/reset/" data-contact-form="reset">`)
	csrfField(h, csrf)
	h.raw(`<button type="submit" class="flex items-center gap-2 text-sm text-muted-foreground hover:text-primary transition-colors pt-4 group">`)
	h.icon("refresh-ccw", "w-4 h-4")
	h.raw(`Send another message</button></form></div>`)
}

func contactForm(h *markup, sec contact.Section, csrf string) {
	h.raw(`<form method="post" action="/contact/" class="w-full space-y-6" data-contact-form="submit">`)
	csrfField(h, csrf)
	h.raw(`<div class="space-y-4">`)

	h.raw(`<div><label for="name" class="block text-sm font-medium mb-2">Name</label><input id="name" name="name" type="text" required maxlength="200" placeholder="Your name..." autocomplete="name"`)
	h.attr("value", sec.Form.Name)
	h.attr("class", inputClass)
	h.raw(`></div>`)

	h.raw(`<div><label for="email" class="block text-sm font-medium mb-2">Email</label><input id="email" name="email" type="email" required maxlength="254" placeholder="your@email.com" autocomplete="email"`)
	h.attr("value", sec.Form.Email)
	h.attr("class", inputClass)
	h.raw(`></div>`)

	h.raw(`<div><label for="message" class="block text-sm font-medium mb-2">Message</label><textarea id="message" name="message" rows="4" required maxlength="5000" placeholder="How can I help you?"`)
	h.attr("class", inputClass+" resize-none")
	h.raw(`>`)
	h.text(sec.Form.Message)
	h.raw(`</textarea></div></div>`)

	h.raw(`<button type="submit" class="btn btn-lg w-full group"`)
	if sec.Loading {
		h.raw(` disabled>Sending...`)
	} else {
		h.raw(`>Send Message`)
		h.icon("send", "w-5 h-5")
	}
	h.raw(`</button>`)

	if sec.Status.IsError() {
		h.raw(`<div class="flex items-center gap-3 p-4 rounded-xl bg-red-500/10 border border-red-500/20 text-red-400 animate-fade-in" role="alert">`)
		h.icon("alert-circle", "w-5 h-5 flex-shrink-0")
		h.raw(`<p class="text-sm">`)
		h.text(sec.Status.Message)
		h.raw(`</p></div>`)
	}
	h.raw(`</form>`)
}

func contactInfo(h *markup, c content.Content) {
	h.raw(`<div class="space-y-6"><div class="glass rounded-3xl p-8"><h3 class="text-xl font-semibold mb-6 text-white">Contact Information</h3><div class="space-y-4">`)
	for _, item := range c.Contact {
		h.raw(`<a`)
		h.href(item.Href)
		h.raw(` class="flex items-center gap-4 p-4 rounded-xl hover:bg-surface transition-colors group">`)
		h.raw(`<div class="w-12 h-12 rounded-xl bg-primary/10 flex items-center justify-center group-hover:bg-primary/20 transition-colors">`)
		h.icon(item.Icon, "w-5 h-5 text-primary")
		h.raw(`</div><div><div class="text-sm text-muted-foreground">`)
		h.text(item.Label)
		h.raw(`</div><div class="font-medium text-white/90">`)
		h.text(item.Value)
		h.raw(`</div></div></a>`)
	}
	h.raw(`</div></div>`)

	if c.Availability.Headline != "" {
		h.raw(`<div class="glass rounded-3xl p-8 border border-primary/30 relative overflow-hidden group"><div class="flex items-center gap-3 mb-4"><span class="w-2.5 h-2.5 bg-green-500 rounded-full animate-pulse"></span><span class="font-medium text-white">`)
		h.text(c.Availability.Headline)
		h.raw(`</span></div><p class="text-muted-foreground text-sm relative z-10 leading-relaxed">`)
		h.text(c.Availability.Text)
		h.raw(`</p></div>`)
	}
	h.raw(`</div>`)
}

func csrfField(h *markup, token string) {
	if token == "" {
		return
	}
	h.raw(`<input type="hidden" name="_csrf"`)
	h.attr("value", token)
	h.raw(`>`)
}

func statusValue(t contact.StatusType) string {
	if t == contact.StatusNone {
		return "none"
	}
	return string(t)
}
