// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n provides the user-facing strings of the planner in Arabic
// and English.
package i18n

import "globalplanner/internal/models"

// Messages is the full set of localised strings for one locale.
type Messages struct {
	// Notifications
	PremiumOnly       string
	Saved             string
	SaveError         string
	Deleted           string
	Upgraded          string
	DarkModeOn        string
	LightModeOn       string
	ConfirmDelete     string
	ConfirmLanguage   string
	GenerateEmpty     string
	GenerateSuccess   string
	GenerateError     string
	CredentialMissing string
	AutoTitle         string

	// Browser
	AppTitle          string
	SearchPlaceholder string
	ChooseTemplate    string
	ChooseDesc        string // formatted with the template count
	NoTemplates       string
	ViewAll           string
	AllCategories     string
	Premium           string
	MoreInfo          string

	// Sidebar
	PremiumMember string
	FreeVersion   string
	NewPage       string
	SavedPages    string
	NoPages       string
	Untitled      string
	Upgrade       string
	LightMode     string
	DarkMode      string
	SwitchLang    string

	// Editor
	Editor             string
	Save               string
	Delete             string
	Export             string
	Back               string
	TitlePlaceholder   string
	ContentPlaceholder string
	AITitle            string
	AIDesc             string
	WhatToPlan         string
	PromptPlaceholder  string
	Generating         string
	Generate           string
	Preview            string

	// Dialogs
	UpgradeTitle       string
	UpgradeBody        string
	UpgradeConfirm     string
	ChangeLanguage     string
	Confirm            string
	Cancel             string
	GeneralCategory    string
	NotificationsLabel string
}

var arabic = Messages{
	PremiumOnly:       "⭐ هذا القالب حصري للأعضاء المميزين! قم بالترقية الآن.",
	Saved:             "تم حفظ التغييرات بنجاح",
	SaveError:         "تعذر حفظ التغييرات",
	Deleted:           "تم حذف الصفحة",
	Upgraded:          "🎉 مبروك! تم تفعيل العضوية المميزة بنجاح.",
	DarkModeOn:        "تم تفعيل الوضع الليلي 🌙",
	LightModeOn:       "تم تفعيل الوضع النهاري ☀️",
	ConfirmDelete:     "هل أنت متأكد من حذف هذه الصفحة؟ لا يمكن التراجع عن هذا الإجراء.",
	ConfirmLanguage:   "هل أنت متأكد؟ سيتم تغيير اتجاه الواجهة.",
	GenerateEmpty:     "الرجاء كتابة وصف لما تريد التخطيط له",
	GenerateSuccess:   "تم إنشاء الخطة بنجاح بواسطة الذكاء الاصطناعي",
	GenerateError:     "حدث خطأ أثناء الاتصال بالذكاء الاصطناعي",
	CredentialMissing: "مفتاح الذكاء الاصطناعي غير مهيأ. تواصل مع مسؤول الخدمة.",
	AutoTitle:         "خطة: ",

	AppTitle:          "Global Planner",
	SearchPlaceholder: "بحث في القوالب...",
	ChooseTemplate:    "اختر نموذجاً للبدء",
	ChooseDesc:        "أكثر من %d قالب جاهز لمساعدتك في التخطيط لحياتك",
	NoTemplates:       "لا توجد قوالب مطابقة لبحثك",
	ViewAll:           "عرض الكل",
	AllCategories:     "الكل",
	Premium:           "PREMIUM",
	MoreInfo:          "تفاصيل",

	PremiumMember: "عضو مميز",
	FreeVersion:   "نسخة مجانية",
	NewPage:       "صفحة جديدة",
	SavedPages:    "صفحاتي المحفوظة",
	NoPages:       "لا توجد صفحات محفوظة",
	Untitled:      "بدون عنوان",
	Upgrade:       "ترقية للعضوية المميزة",
	LightMode:     "الوضع النهاري",
	DarkMode:      "الوضع الليلي",
	SwitchLang:    "English",

	Editor:             "المحرر",
	Save:               "حفظ التغييرات",
	Delete:             "حذف",
	Export:             "تصدير",
	Back:               "رجوع",
	TitlePlaceholder:   "عنوان الصفحة...",
	ContentPlaceholder: "اكتب خطتك هنا أو استخدم الذكاء الاصطناعي...",
	AITitle:            "مساعد الذكاء الاصطناعي",
	AIDesc:             "اطلب من الذكاء الاصطناعي إنشاء خطة لرحلة، جدول مذاكرة، أو قائمة مهام. سيقوم بكتابة الهيكل الكامل لك.",
	WhatToPlan:         "ماذا تريد أن تخطط؟",
	PromptPlaceholder:  "مثال: خطة لتعلم البرمجة في 3 أشهر...",
	Generating:         "جاري التفكير...",
	Generate:           "إنشاء بالذكاء الاصطناعي",
	Preview:            "معاينة",

	UpgradeTitle:       "ترقية للعضوية المميزة",
	UpgradeBody:        "احصل على وصول غير محدود لجميع القوالب الاحترافية، أدوات الذكاء الاصطناعي المتقدمة، وأولوية الدعم الفني.",
	UpgradeConfirm:     "ترقية الآن مجاناً",
	ChangeLanguage:     "تغيير اللغة",
	Confirm:            "تأكيد",
	Cancel:             "إلغاء",
	GeneralCategory:    "عام",
	NotificationsLabel: "الإشعارات",
}

var english = Messages{
	PremiumOnly:       "⭐ This template is for Premium members only! Upgrade now.",
	Saved:             "Changes saved successfully",
	SaveError:         "Could not save changes",
	Deleted:           "Page deleted",
	Upgraded:          "🎉 Congratulations! Premium activated.",
	DarkModeOn:        "Dark mode activated 🌙",
	LightModeOn:       "Light mode activated ☀️",
	ConfirmDelete:     "Are you sure you want to delete this page? This action cannot be undone.",
	ConfirmLanguage:   "Are you sure? The interface layout will be flipped.",
	GenerateEmpty:     "Please describe what you want to plan",
	GenerateSuccess:   "Plan generated successfully by AI",
	GenerateError:     "Error connecting to AI",
	CredentialMissing: "The AI service is not configured. Contact the administrator.",
	AutoTitle:         "Plan: ",

	AppTitle:          "Global Planner",
	SearchPlaceholder: "Search templates...",
	ChooseTemplate:    "Choose a template to start",
	ChooseDesc:        "Over %d ready-made templates to help you plan your life",
	NoTemplates:       "No templates match your search",
	ViewAll:           "View All",
	AllCategories:     "All",
	Premium:           "PREMIUM",
	MoreInfo:          "More Info",

	PremiumMember: "Premium Member",
	FreeVersion:   "Free Version",
	NewPage:       "New Page",
	SavedPages:    "Saved Pages",
	NoPages:       "No saved pages",
	Untitled:      "Untitled",
	Upgrade:       "Upgrade to Premium",
	LightMode:     "Light Mode",
	DarkMode:      "Dark Mode",
	SwitchLang:    "العربية",

	Editor:             "Editor",
	Save:               "Save Changes",
	Delete:             "Delete",
	Export:             "Export",
	Back:               "Back",
	TitlePlaceholder:   "Page Title...",
	ContentPlaceholder: "Write your plan here or use AI...",
	AITitle:            "AI Assistant",
	AIDesc:             "Ask the AI to create a travel plan, study schedule, or to-do list. It will write the full structure for you.",
	WhatToPlan:         "What do you want to plan?",
	PromptPlaceholder:  "Example: 3-month coding study plan...",
	Generating:         "Thinking...",
	Generate:           "Generate with AI",
	Preview:            "Preview",

	UpgradeTitle:       "Upgrade to Premium",
	UpgradeBody:        "Get unlimited access to all professional templates, advanced AI tools, and priority support.",
	UpgradeConfirm:     "Upgrade Free",
	ChangeLanguage:     "Change Language",
	Confirm:            "Confirm",
	Cancel:             "Cancel",
	GeneralCategory:    "General",
	NotificationsLabel: "Notifications",
}

// For returns the messages of the given locale. Unknown locales get the
// Arabic messages.
func For(l models.Locale) Messages {
	if l == models.LocaleEnglish {
		return english
	}
	return arabic
}

// ModeChanged returns the notification for a theme switch.
func (m Messages) ModeChanged(dark bool) string {
	if dark {
		return m.DarkModeOn
	}
	return m.LightModeOn
}
